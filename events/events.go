package events

type GameState struct {
	ID          string       `json:"id"`
	Board       [3][3]string `json:"board"`
	Turn        string       `json:"turn"`
	Winner      string       `json:"winner"`
	Over        bool         `json:"over"`
	Human       string       `json:"human"`
	HumanSymbol string       `json:"humanSymbol"`
	Status      string       `json:"status"`
	Games       int          `json:"games"`
}

type GameEvent struct {
	Data GameState
}

var EventChannel = make(chan GameEvent, 100)
