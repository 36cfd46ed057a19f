// utils/utils.go

package utils

import (
	"sync"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/google/uuid"
)

var (
	// GamesLock guards Games and every session in it. Sessions share value
	// tables, so holding it also keeps learning updates sequential.
	GamesLock sync.Mutex
	Games     = make(map[string]*game.Game)
)

func GenerateUUIDString() string {
	id := uuid.New()
	return id.String()
}
