package resource

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/bolder-engine/bolder/internal/utils"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

type handleEntry struct {
	// nextFree links inactive slots into the free list. A value equal to the capacity ends the list.
	nextFree   uint32
	generation uint32
}

// Manager is a fixed-capacity pool of T values that are referred to with generation-checked handles.
// Each slot carries a generation counter that is incremented every time the slot's value is removed,
// so handles to a removed value are detected as stale even after the slot is reused.
//
// Managers are not synchronized unless created with ManagerCreateSynchronized.
type Manager[L Layout, T any] struct {
	logger *slog.Logger
	name   string
	flags  ManagerCreateFlags
	mutex  utils.OptionalRWMutex

	elems    []T
	entries  []handleEntry
	actives  *bitset.BitSet
	size     int
	freeHead uint32
}

// Add stores value in a free slot and returns a handle to it. If every slot is in use, an
// error wrapping ErrOutOfSpace is returned and the manager is left unchanged.
func (m *Manager[L, T]) Add(value T) (Handle[L], error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.size == len(m.elems) {
		return Handle[L]{}, errors.Wrapf(&ResourceError{Code: OutOfSpace}, "manager %s has all %d slots in use", m.name, len(m.elems))
	}

	index := m.freeHead
	entry := &m.entries[index]
	m.freeHead = entry.nextFree

	m.elems[index] = value
	m.actives.Set(uint(index))
	m.size++

	handle := newHandle[L](index, entry.generation)
	m.logger.Debug("Manager::Add", slog.String("Name", m.name), slog.Any("Handle", handle))

	DebugValidate(validatorFunc(m.validate))
	return handle, nil
}

// Remove releases the value referred to by handle and makes its slot available to Add. Every handle
// that refers to the removed value becomes stale.
//
// If the slot holds no value, an error wrapping ErrNullEntry is returned. If the slot holds a value
// that handle does not refer to, an error wrapping ErrInvalidHandle is returned.
func (m *Manager[L, T]) Remove(handle Handle[L]) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, err := m.take(handle)
	return err
}

// Take removes the value referred to by handle, like Remove, and returns the value that was stored.
// The lookup and the removal happen under one lock, so on a synchronized manager exactly one caller
// can take a given value.
func (m *Manager[L, T]) Take(handle Handle[L]) (T, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.take(handle)
}

func (m *Manager[L, T]) take(handle Handle[L]) (T, error) {
	var zero T

	index := handle.Index()
	if !m.isActive(index) {
		return zero, errors.Wrapf(&ResourceError{Code: NullEntry}, "manager %s could not remove %s", m.name, handle)
	}

	entry := &m.entries[index]
	if entry.generation != handle.Generation() {
		return zero, errors.Wrapf(&ResourceError{Code: InvalidHandle}, "manager %s could not remove %s: slot is at generation %d", m.name, handle, entry.generation)
	}

	entry.nextFree = m.freeHead
	m.freeHead = index

	value := m.elems[index]
	m.elems[index] = zero
	m.actives.Clear(uint(index))
	entry.generation = nextGeneration(entry.generation, generationMask(indexBits[L]()))
	m.size--

	m.logger.Debug("Manager::Remove", slog.String("Name", m.name), slog.Any("Handle", handle))

	DebugValidate(validatorFunc(m.validate))
	return value, nil
}

// nextGeneration increments generation, wrapping before it reaches mask. The largest generation is
// reserved for the zero Handle.
func nextGeneration(generation, mask uint32) uint32 {
	generation++
	if generation >= mask {
		return 0
	}

	return generation
}

// Get returns a pointer to the value that handle refers to, or nil if that value has been removed.
// Stale handles are expected, so they are not treated as an error.
//
// The returned pointer refers to the manager's storage and is only valid until the next call to Add
// or Remove. Synchronized managers only guard the lookup, not later use of the pointer: use Lookup
// or Take when other goroutines may remove values.
func (m *Manager[L, T]) Get(handle Handle[L]) *T {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	index := handle.Index()
	if !m.isActive(index) || m.entries[index].generation != handle.Generation() {
		return nil
	}

	return &m.elems[index]
}

// Lookup returns a copy of the value that handle refers to. The copy is made under the manager's lock,
// so unlike Get it is safe to use on a synchronized manager while other goroutines call Remove.
func (m *Manager[L, T]) Lookup(handle Handle[L]) (T, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	index := handle.Index()
	if !m.isActive(index) || m.entries[index].generation != handle.Generation() {
		var zero T
		return zero, false
	}

	return m.elems[index], true
}

// Contains reports whether handle refers to a live value
func (m *Manager[L, T]) Contains(handle Handle[L]) bool {
	return m.Get(handle) != nil
}

// Each calls visit for every live value in slot order, until visit returns false. The manager must
// not be modified from within visit.
func (m *Manager[L, T]) Each(visit func(handle Handle[L], value *T) bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for i, ok := m.actives.NextSet(0); ok; i, ok = m.actives.NextSet(i + 1) {
		handle := newHandle[L](uint32(i), m.entries[i].generation)
		if !visit(handle, &m.elems[i]) {
			return
		}
	}
}

// Size returns the number of live values
func (m *Manager[L, T]) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.size
}

// Capacity returns the number of slots, which never changes
func (m *Manager[L, T]) Capacity() int {
	return len(m.elems)
}

func (m *Manager[L, T]) Name() string {
	return m.name
}

func (m *Manager[L, T]) isActive(index uint32) bool {
	return int(index) < len(m.elems) && m.actives.Test(uint(index))
}
