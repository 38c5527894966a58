package idgen

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGen hands out identifiers for generated entities. GUIDs are random and
// collision-free across workers; record ids are monotonic within one
// generator instance, so a single IDGen must be shared by every worker of a
// run. Both methods are safe for concurrent use.
type IDGen struct {
	recID atomic.Int64
}

func New() *IDGen {
	return &IDGen{}
}

// NewGUID returns a fresh random guid string.
func (g *IDGen) NewGUID() string {
	return uuid.NewString()
}

// NextRecID returns the next monotonic record id, starting at 1.
func (g *IDGen) NextRecID() int64 {
	return g.recID.Add(1)
}
