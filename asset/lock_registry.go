package asset

import (
	"sync"
)

// lockRegistry serializes the "read max id, insert" sequence used for generated asset codes so
// concurrent creates in one process never compute the same code. Writers in other processes can
// still collide; that surfaces as ErrDuplicateCode.
type lockRegistry struct {
	locks sync.Map
}

var lr *lockRegistry
var once sync.Once

func LockRegistry() *lockRegistry {
	once.Do(func() {
		lr = &lockRegistry{}
	})
	return lr
}

func (r *lockRegistry) Get(sequence string) *sync.Mutex {
	val, _ := r.locks.LoadOrStore(sequence, &sync.Mutex{})
	return val.(*sync.Mutex)
}
