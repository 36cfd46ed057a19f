package game

// StateInfo describes one state code. Codes that cannot occur in a real game
// (e.g. two winners, uneven piece counts) are included all the same.
type StateInfo struct {
	Code   StateCode
	Ended  bool
	Winner Player
}

// EnumerateStates evaluates every one of the 3^9 boards, indexed by code.
func EnumerateStates() []StateInfo {
	states := make([]StateInfo, NumStates)
	env := NewEnvironment()
	for code := StateCode(0); code < NumStates; code++ {
		env.board = Decode(code)
		env.invalidate()
		ended := env.GameOver(true)
		states[code] = StateInfo{Code: code, Ended: ended, Winner: env.winner}
	}
	return states
}
