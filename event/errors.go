package event

import "github.com/pkg/errors"

// ErrHandlerNotRegistered is the error returned when removing a handler that is not registered on a channel
var ErrHandlerNotRegistered error = errors.New("handler is not registered on this channel")
