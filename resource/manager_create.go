package resource

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/bolder-engine/bolder/internal/utils"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ManagerCreateFlags indicate specific manager behaviors to activate
type ManagerCreateFlags int32

const (
	// ManagerCreateSynchronized causes the manager to guard every operation with an internal mutex.
	// Managers are unsynchronized by default, and are expected to be owned by a single thread. Pointers
	// returned from Get are not protected by the mutex and remain valid only until the next Add or Remove.
	ManagerCreateSynchronized ManagerCreateFlags = 1 << iota
)

var managerCreateFlagNames = []struct {
	flag ManagerCreateFlags
	name string
}{
	{ManagerCreateSynchronized, "ManagerCreateSynchronized"},
}

func (f ManagerCreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	remaining := f
	for _, entry := range managerCreateFlagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
			remaining &^= entry.flag
		}
	}

	if remaining != 0 {
		names = append(names, fmt.Sprintf("ManagerCreateFlags(%#x)", int32(remaining)))
	}

	return strings.Join(names, "|")
}

// ManagerCreateOptions contains optional settings when creating a Manager
type ManagerCreateOptions struct {
	// Flags indicates specific manager behaviors to activate
	Flags ManagerCreateFlags
	// Name is used in logs, errors and statistics to identify the manager. It may be left blank.
	Name string
}

// NewManager creates a Manager with room for capacity values. The capacity is fixed for the lifetime
// of the Manager, and must be addressable by the index bits of L.
//
// logger - The logger that manager operations will be traced to
//
// capacity - The number of slots in the manager
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewManager[L Layout, T any](logger *slog.Logger, capacity int, options ManagerCreateOptions) (*Manager[L, T], error) {
	err := ValidateLayout[L]()
	if err != nil {
		return nil, err
	}

	maxCapacity := uint64(1) << indexBits[L]()
	if capacity <= 0 {
		return nil, errors.Newf("manager capacity must be positive, but %d was provided", capacity)
	} else if uint64(capacity) > maxCapacity {
		return nil, errors.Newf("manager capacity %d is larger than the %d slots addressable by %d index bits", capacity, maxCapacity, indexBits[L]())
	}

	name := options.Name
	if name == "" {
		var value T
		name = fmt.Sprintf("%T", value)
	}

	m := &Manager[L, T]{
		logger:  logger,
		name:    name,
		flags:   options.Flags,
		mutex:   utils.OptionalRWMutex{UseMutex: options.Flags&ManagerCreateSynchronized != 0},
		elems:   make([]T, capacity),
		entries: make([]handleEntry, capacity),
		actives: bitset.New(uint(capacity)),
	}

	for i := range m.entries {
		m.entries[i].nextFree = uint32(i + 1)
	}

	logger.Debug("Manager::New",
		slog.String("Name", name),
		slog.Int("Capacity", capacity),
		slog.String("Flags", options.Flags.String()))

	return m, nil
}
