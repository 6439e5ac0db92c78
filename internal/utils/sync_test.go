package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalRWMutex_Unused(t *testing.T) {
	var m OptionalRWMutex

	// Without UseMutex, nested locking must not deadlock
	m.Lock()
	m.Lock()
	m.RLock()
	m.RUnlock()
	m.Unlock()
	m.Unlock()

	require.True(t, m.Mutex.TryLock())
	m.Mutex.Unlock()
}

func TestOptionalRWMutex_Used(t *testing.T) {
	m := OptionalRWMutex{UseMutex: true}

	m.Lock()
	require.False(t, m.Mutex.TryLock())
	m.Unlock()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, counter)
}
