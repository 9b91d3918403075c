// Package agentlock serializa o caminho "verifica conflito e grava"
// por corretor. Duas criações simultâneas para o mesmo corretor nunca
// passam juntas pela checagem de conflito.
package agentlock

import "sync"

type Keyed struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func New() *Keyed {
	return &Keyed{locks: make(map[uint]*sync.Mutex)}
}

func (k *Keyed) lockFor(agentID uint) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[agentID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[agentID] = l
	}
	return l
}

func (k *Keyed) Lock(agentID uint) {
	k.lockFor(agentID).Lock()
}

func (k *Keyed) Unlock(agentID uint) {
	k.lockFor(agentID).Unlock()
}
