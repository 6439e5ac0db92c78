package resource

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Validatable is used by the DebugValidate method to allow it to act upon
// all types with a Validate method
type Validatable interface {
	Validate() error
}

type validatorFunc func() error

func (f validatorFunc) Validate() error {
	return f()
}

// Validate checks the manager's bookkeeping: the live count must match the active slots, and the free
// list must visit every inactive slot exactly once.
func (m *Manager[L, T]) Validate() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.validate()
}

func (m *Manager[L, T]) validate() error {
	capacity := uint32(len(m.elems))

	activeCount := int(m.actives.Count())
	if activeCount != m.size {
		return errors.Newf("manager %s reports %d values but %d slots are active", m.name, m.size, activeCount)
	}

	maxGeneration := generationMask(indexBits[L]())
	for i, entry := range m.entries {
		if entry.generation >= maxGeneration {
			return errors.Newf("manager %s slot %d has generation %d, which is reserved or does not fit in a handle", m.name, i, entry.generation)
		}
	}

	visited := bitset.New(uint(capacity))
	freeCount := 0
	for index := m.freeHead; index != capacity; index = m.entries[index].nextFree {
		if index > capacity {
			return errors.Newf("manager %s free list contains out of range slot %d", m.name, index)
		}
		if m.actives.Test(uint(index)) {
			return errors.Newf("manager %s slot %d is in the free list but is active", m.name, index)
		}
		if visited.Test(uint(index)) {
			return errors.Newf("manager %s free list visits slot %d twice", m.name, index)
		}

		visited.Set(uint(index))
		freeCount++
	}

	if freeCount != int(capacity)-m.size {
		return errors.Newf("manager %s free list has %d slots, but %d slots are inactive", m.name, freeCount, int(capacity)-m.size)
	}

	return nil
}
