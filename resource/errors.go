package resource

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// HandleErrorType identifies the way in which a Manager was misused
type HandleErrorType int

const (
	// OutOfSpace is reported when adding a value to a Manager that is full
	OutOfSpace HandleErrorType = iota
	// NullEntry is reported when removing a slot that does not contain a value
	NullEntry
	// InvalidHandle is reported when removing with a handle from a previous occupant of a slot
	InvalidHandle
)

func (t HandleErrorType) String() string {
	switch t {
	case OutOfSpace:
		return "OutOfSpace"
	case NullEntry:
		return "NullEntry"
	case InvalidHandle:
		return "InvalidHandle"
	}

	return fmt.Sprintf("HandleErrorType(%d)", int(t))
}

// ResourceError is the error returned by Manager operations that were called incorrectly. Managers
// wrap it with additional context, so use errors.As or ErrorCode to retrieve it.
type ResourceError struct {
	Code HandleErrorType
}

var (
	ErrOutOfSpace    error = &ResourceError{Code: OutOfSpace}
	ErrNullEntry     error = &ResourceError{Code: NullEntry}
	ErrInvalidHandle error = &ResourceError{Code: InvalidHandle}
)

func (e *ResourceError) Error() string {
	switch e.Code {
	case OutOfSpace:
		return "add entry to a full resource manager"
	case NullEntry:
		return "modify or remove entry that does not contain value"
	case InvalidHandle:
		return "modify or remove entry with an invalid handle"
	}

	return fmt.Sprintf("unknown resource error %d", int(e.Code))
}

// Is matches any ResourceError carrying the same code
func (e *ResourceError) Is(target error) bool {
	other, ok := target.(*ResourceError)
	return ok && other.Code == e.Code
}

// ErrorCode retrieves the HandleErrorType from err. The second return value is false
// if err does not contain a ResourceError.
func ErrorCode(err error) (HandleErrorType, bool) {
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		return 0, false
	}

	return resErr.Code, true
}
