//go:build debug_resource

package resource

import (
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type debugLayout struct{}

func (debugLayout) IndexBits() uint { return 8 }

func newDebugManager(t *testing.T, capacity int) *Manager[debugLayout, int] {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	m, err := NewManager[debugLayout, int](logger, capacity, ManagerCreateOptions{})
	require.NoError(t, err)
	return m
}

func TestDebugValidate_Panics(t *testing.T) {
	require.Panics(t, func() {
		DebugValidate(validatorFunc(func() error { return errors.New("broken") }))
	})
	require.NotPanics(t, func() {
		DebugValidate(validatorFunc(func() error { return nil }))
	})
}

func TestDebugValidate_ChurnStaysValid(t *testing.T) {
	m := newDebugManager(t, 4)

	require.NotPanics(t, func() {
		var handles []Handle[debugLayout]
		for cycle := 0; cycle < 50; cycle++ {
			for len(handles) < m.Capacity() {
				handle, err := m.Add(cycle)
				require.NoError(t, err)
				handles = append(handles, handle)
			}
			for i := cycle % 2; i < len(handles); i += 2 {
				require.NoError(t, m.Remove(handles[i]))
			}
			var live []Handle[debugLayout]
			for _, handle := range handles {
				if m.Contains(handle) {
					live = append(live, handle)
				}
			}
			handles = live
		}
	})
}

func TestDebugValidate_AddPanicsOnCorruptSize(t *testing.T) {
	m := newDebugManager(t, 4)

	_, err := m.Add(1)
	require.NoError(t, err)

	m.size = 0
	require.Panics(t, func() {
		_, _ = m.Add(2)
	})
}

func TestDebugValidate_RemovePanicsOnCorruptFreeList(t *testing.T) {
	m := newDebugManager(t, 4)

	handle, err := m.Add(1)
	require.NoError(t, err)

	m.entries[m.freeHead].nextFree = m.freeHead
	require.Panics(t, func() {
		_ = m.Remove(handle)
	})
}
