package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/utils"
	"github.com/cameroncuttingedge/tic_tac_toe_td/websocket"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// OpponentFactory builds the machine side for a new session in which the
// opponent plays sym.
type OpponentFactory func(sym game.Player) game.Opponent

type Move struct {
	Username string `json:"username"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type handlers struct {
	newOpponent OpponentFactory
}

func NewRouter(newOpponent OpponentFactory) *mux.Router {
	h := &handlers{newOpponent: newOpponent}
	r := mux.NewRouter()

	r.HandleFunc("/game/create", h.createGameHandler).Methods("POST")
	r.HandleFunc("/game/{gameID}/move", h.makeMoveHandler).Methods("POST")
	r.HandleFunc("/game/{gameID}/state/", h.getGameStateHandler).Methods("GET")
	r.HandleFunc("/game/{gameID}/restart", h.requestRestartHandler).Methods("POST")
	r.HandleFunc("/ws/game/state/{gameID}", websocket.GameWebSocketHandler)
	return r
}

func StartAPI(addr string, newOpponent OpponentFactory) error {
	log.Info().Str("addr", addr).Msg("Server started")
	return http.ListenAndServe(addr, NewRouter(newOpponent))
}

func (h *handlers) createGameHandler(w http.ResponseWriter, r *http.Request) {
	utils.GamesLock.Lock()
	defer utils.GamesLock.Unlock()

	log.Info().Msg("Attempting to create New game")

	playerID := r.URL.Query().Get("playerID")
	if playerID == "" {
		http.Error(w, "Player ID is required", http.StatusBadRequest)
		return
	}
	symbol := game.PlayerO
	if s := r.URL.Query().Get("symbol"); s != "" {
		var ok bool
		if symbol, ok = game.ParsePlayer(s); !ok {
			http.Error(w, "symbol must be X or O", http.StatusBadRequest)
			return
		}
	}

	gameID := utils.GenerateUUIDString()
	newGame, err := game.NewGame(gameID, playerID, symbol, h.newOpponent(symbol.Opponent()))
	if err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("Failed to create game")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.Games[gameID] = newGame
	newGame.PublishState()

	writeJSON(w, map[string]string{"gameID": gameID})
}

func (h *handlers) getGameStateHandler(w http.ResponseWriter, r *http.Request) {
	utils.GamesLock.Lock()
	defer utils.GamesLock.Unlock()

	g, err := lookupGame(mux.Vars(r)["gameID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, g.Snapshot())
}

func (h *handlers) makeMoveHandler(w http.ResponseWriter, r *http.Request) {
	utils.GamesLock.Lock()
	defer utils.GamesLock.Unlock()

	move, err := validateAndExtractMove(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := lookupGame(mux.Vars(r)["gameID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := g.MakeMove(move.Username, move.X, move.Y); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, game.ErrInvalidPlayer) {
			status = http.StatusForbidden
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, g.Snapshot())
}

func (h *handlers) requestRestartHandler(w http.ResponseWriter, r *http.Request) {
	utils.GamesLock.Lock()
	defer utils.GamesLock.Unlock()

	playerID := r.URL.Query().Get("playerID")
	if playerID == "" {
		http.Error(w, "Player ID is required", http.StatusBadRequest)
		return
	}

	g, err := lookupGame(mux.Vars(r)["gameID"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := g.RequestRestart(playerID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, g.Snapshot())
}

// lookupGame expects utils.GamesLock to be held.
func lookupGame(gameID string) (*game.Game, error) {
	if gameID == "" {
		return nil, fmt.Errorf("game ID is required")
	}
	g, exists := utils.Games[gameID]
	if !exists {
		return nil, fmt.Errorf("game not found")
	}
	return g, nil
}

func validateAndExtractMove(r *http.Request) (*Move, error) {
	var move Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		return nil, fmt.Errorf("error decoding JSON: %v", err)
	}

	if move.Username == "" {
		return nil, fmt.Errorf("no username in JSON")
	}
	if move.X < 0 || move.Y < 0 || move.X >= game.Length || move.Y >= game.Length {
		return nil, fmt.Errorf("coordinates are out of bounds")
	}

	return &move, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
