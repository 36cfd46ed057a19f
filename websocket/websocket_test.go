package websocket

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/events"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/utils"
	"github.com/cameroncuttingedge/tic_tac_toe_td/value"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, id string) *game.Game {
	t.Helper()
	opp := agent.New(game.PlayerO, value.New(), agent.WithEpsilon(0), agent.WithSeed(1))
	g, err := game.NewGame(id, "alice", game.PlayerX, opp)
	require.NoError(t, err)

	utils.GamesLock.Lock()
	utils.Games[id] = g
	utils.GamesLock.Unlock()
	t.Cleanup(func() {
		utils.GamesLock.Lock()
		delete(utils.Games, id)
		utils.GamesLock.Unlock()
	})
	return g
}

func newServer(t *testing.T) string {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/ws/game/state/{gameID}", GameWebSocketHandler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/game/state/"
}

func connectionCount(gameID string) int {
	connLock.Lock()
	defer connLock.Unlock()
	return len(gameConnections[gameID])
}

func TestGameWebSocketHandler(t *testing.T) {
	t.Run("first frame is the session snapshot", func(t *testing.T) {
		newSession(t, "ws-snapshot")
		url := newServer(t)

		conn, _, err := websocket.DefaultDialer.Dial(url+"ws-snapshot", nil)
		require.NoError(t, err)
		defer conn.Close()

		var state events.GameState
		require.NoError(t, conn.ReadJSON(&state))
		require.Equal(t, "ws-snapshot", state.ID)
		require.Equal(t, game.StatusActive, state.Status)
		require.Equal(t, "X", state.Turn)
	})

	t.Run("unknown game is rejected", func(t *testing.T) {
		url := newServer(t)
		_, resp, err := websocket.DefaultDialer.Dial(url+"missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, 404, resp.StatusCode)
	})

	t.Run("connections are dropped on close", func(t *testing.T) {
		newSession(t, "ws-close")
		url := newServer(t)

		conn, _, err := websocket.DefaultDialer.Dial(url+"ws-close", nil)
		require.NoError(t, err)
		var state events.GameState
		require.NoError(t, conn.ReadJSON(&state))
		require.Eventually(t, func() bool { return connectionCount("ws-close") == 1 },
			2*time.Second, 10*time.Millisecond)

		conn.Close()
		require.Eventually(t, func() bool { return connectionCount("ws-close") == 0 },
			2*time.Second, 10*time.Millisecond)
	})
}

func TestBroadcastDuringConnect(t *testing.T) {
	const clients = 50
	g := newSession(t, "ws-broadcast")
	url := newServer(t)

	update := g.Snapshot()
	update.Status = "broadcast"

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				BroadcastGameStateUpdate(update)
			}
		}
	}()

	conns := make([]*websocket.Conn, 0, clients)
	for i := 0; i < clients; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url+"ws-broadcast", nil)
		require.NoError(t, err)
		conns = append(conns, conn)

		var first events.GameState
		require.NoError(t, conn.ReadJSON(&first))
		require.Equal(t, game.StatusActive, first.Status,
			"Initial snapshot must arrive before any broadcast")

		// drain broadcasts so the writer never blocks on a full socket
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}

	close(stop)
	for _, conn := range conns {
		conn.Close()
	}
	wg.Wait()
}
