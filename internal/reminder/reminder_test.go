package reminder

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifiedDedupe(t *testing.T) {
	j := NewJob(nil, nil, nil)
	now := time.Now()

	assert.False(t, j.alreadyNotified(42))

	j.markNotified(42, now)
	assert.True(t, j.alreadyNotified(42))

	// dentro da janela de retenção o registro permanece
	j.pruneNotified(now.Add(time.Hour))
	assert.True(t, j.alreadyNotified(42))

	// depois de duas horas o registro é descartado
	j.pruneNotified(now.Add(3 * time.Hour))
	assert.False(t, j.alreadyNotified(42))
}

func TestNotifiedConcurrentRounds(t *testing.T) {
	j := NewJob(nil, nil, nil)

	// simula rodadas do cron sobrepostas mexendo no mesmo controle
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		id := uint(i % 4)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !j.alreadyNotified(id) {
				j.markNotified(id, time.Now())
			}
			j.pruneNotified(time.Now())
		}()
	}
	wg.Wait()

	for id := uint(0); id < 4; id++ {
		assert.True(t, j.alreadyNotified(id))
	}
}
