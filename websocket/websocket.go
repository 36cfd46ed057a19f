package websocket

import (
	"net/http"
	"sync"

	"github.com/cameroncuttingedge/tic_tac_toe_td/events"
	"github.com/cameroncuttingedge/tic_tac_toe_td/utils"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	gameConnections = make(map[string][]*websocket.Conn)
	connLock        sync.Mutex
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow connections from any origin
}

func GameWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	gameID, ok := mux.Vars(r)["gameID"]
	if !ok {
		http.Error(w, "Game ID is required", http.StatusBadRequest)
		return
	}

	utils.GamesLock.Lock()
	g, exists := utils.Games[gameID]
	var state events.GameState
	if exists {
		state = g.Snapshot()
	}
	utils.GamesLock.Unlock()
	if !exists {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("WebSocket upgrade error")
		return
	}
	defer conn.Close()

	if err := registerConnection(gameID, conn, state); err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("Error sending game state")
		return
	}
	defer deregisterConnection(gameID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debug().Err(err).Str("gameID", gameID).Msg("WebSocket closed")
			break
		}
	}
}

func BroadcastGameStateUpdate(gameState events.GameState) {
	connLock.Lock()
	defer connLock.Unlock()

	connections := gameConnections[gameState.ID]
	if len(connections) == 0 {
		log.Debug().Str("gameID", gameState.ID).Msg("No connections to broadcast")
		return
	}

	log.Info().Str("gameID", gameState.ID).Int("connectionsCount", len(connections)).Msg("Broadcasting game state update")
	for i, conn := range connections {
		if err := conn.WriteJSON(gameState); err != nil {
			log.Error().Err(err).Str("gameID", gameState.ID).Msgf("Failed to broadcast game state update to connection %d", i)
		}
	}
}

// registerConnection sends the initial snapshot and adds conn to the
// broadcast set under connLock, so no broadcast writes to conn concurrently.
func registerConnection(gameID string, conn *websocket.Conn, initial events.GameState) error {
	connLock.Lock()
	defer connLock.Unlock()
	if err := conn.WriteJSON(initial); err != nil {
		return err
	}
	gameConnections[gameID] = append(gameConnections[gameID], conn)
	log.Info().Str("gameID", gameID).Int("connectionsCount", len(gameConnections[gameID])).Msg("WebSocket connection registered")
	return nil
}

func deregisterConnection(gameID string, conn *websocket.Conn) {
	connLock.Lock()
	defer connLock.Unlock()
	connections := gameConnections[gameID]
	for i, c := range connections {
		if c == conn {
			gameConnections[gameID] = append(connections[:i], connections[i+1:]...)
			log.Info().Str("gameID", gameID).Int("remainingConnections", len(gameConnections[gameID])).Msg("WebSocket connection deregistered")
			break
		}
	}
	if len(gameConnections[gameID]) == 0 {
		delete(gameConnections, gameID)
	}
}

// StartEventListening forwards published game states to websocket clients
// until the event channel is closed.
func StartEventListening() {
	log.Info().Msg("Event listener starting...")
	go func() {
		for gameEvent := range events.EventChannel {
			log.Debug().
				Str("gameID", gameEvent.Data.ID).
				Str("status", gameEvent.Data.Status).
				Msg("Received game event, broadcasting update")
			BroadcastGameStateUpdate(gameEvent.Data)
		}
		log.Info().Msg("Event listener goroutine exited.")
	}()
}
