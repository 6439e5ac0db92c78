package resource_test

import (
	"fmt"
	"testing"

	"github.com/bolder-engine/bolder/resource"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestHandle_String(t *testing.T) {
	m := newTestManager(t, 2)

	_, err := m.Add(1)
	require.NoError(t, err)
	handle, err := m.Add(2)
	require.NoError(t, err)
	require.Equal(t, "Handle(1:0)", handle.String())

	require.NoError(t, m.Remove(handle))
	handle, err = m.Add(3)
	require.NoError(t, err)
	require.Equal(t, "Handle(1:1)", fmt.Sprint(handle))
}

func TestHandle_DistinctPerGeneration(t *testing.T) {
	m := newTestManager(t, 1)

	seen := map[testHandle]struct{}{}
	for i := 0; i < 100; i++ {
		handle, err := m.Add(i)
		require.NoError(t, err)

		_, duplicate := seen[handle]
		require.False(t, duplicate)
		seen[handle] = struct{}{}

		require.NoError(t, m.Remove(handle))
	}
}

func TestValidateLayout(t *testing.T) {
	require.NoError(t, resource.ValidateLayout[testLayout]())
	require.NoError(t, resource.ValidateLayout[narrowLayout]())
	require.Error(t, resource.ValidateLayout[zeroLayout]())
	require.Error(t, resource.ValidateLayout[wideLayout]())
}

func TestResourceError_Messages(t *testing.T) {
	require.Equal(t, "add entry to a full resource manager", resource.ErrOutOfSpace.Error())
	require.Equal(t, "modify or remove entry that does not contain value", resource.ErrNullEntry.Error())
	require.Equal(t, "modify or remove entry with an invalid handle", resource.ErrInvalidHandle.Error())

	require.Equal(t, "OutOfSpace", resource.OutOfSpace.String())
	require.Equal(t, "NullEntry", resource.NullEntry.String())
	require.Equal(t, "InvalidHandle", resource.InvalidHandle.String())
	require.Equal(t, "HandleErrorType(9)", resource.HandleErrorType(9).String())
}

func TestResourceError_Matching(t *testing.T) {
	m := newTestManager(t, 1)

	handle, err := m.Add(1)
	require.NoError(t, err)
	require.NoError(t, m.Remove(handle))

	err = m.Remove(handle)
	require.True(t, errors.Is(err, resource.ErrNullEntry))
	require.False(t, errors.Is(err, resource.ErrInvalidHandle))
	require.False(t, errors.Is(err, resource.ErrOutOfSpace))

	var resErr *resource.ResourceError
	require.True(t, errors.As(err, &resErr))
	require.Equal(t, resource.NullEntry, resErr.Code)

	wrapped := errors.Wrap(err, "destroying texture")
	code, ok := resource.ErrorCode(wrapped)
	require.True(t, ok)
	require.Equal(t, resource.NullEntry, code)

	_, ok = resource.ErrorCode(errors.New("unrelated"))
	require.False(t, ok)
}

func TestManagerCreateFlags_String(t *testing.T) {
	require.Equal(t, "None", resource.ManagerCreateFlags(0).String())
	require.Equal(t, "ManagerCreateSynchronized", resource.ManagerCreateSynchronized.String())
	require.Equal(t, "ManagerCreateSynchronized|ManagerCreateFlags(0x4)", (resource.ManagerCreateSynchronized | 4).String())
}
