package event

import (
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// HandlerID identifies a handler registered with AddHandler. IDs are never reused within a Channel.
type HandlerID uint64

type registeredHandler struct {
	id      HandlerID
	handler any
}

type handlerRegistry struct {
	handlers []registeredHandler
}

// Channel delivers events to the handlers registered for each event type. Handlers are keyed by the
// static type of the event, so a handler registered for WindowResize does not receive *WindowResize.
//
// Channel is safe for concurrent use. Handlers are invoked on the broadcasting goroutine without any
// lock held, so they may add or remove handlers themselves.
type Channel struct {
	logger *slog.Logger

	mutex      sync.Mutex
	lastID     HandlerID
	registries *swiss.Map[reflect.Type, *handlerRegistry]
}

func NewChannel(logger *slog.Logger) *Channel {
	return &Channel{
		logger:     logger,
		registries: swiss.NewMap[reflect.Type, *handlerRegistry](8),
	}
}

func typeOf[E any]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// AddHandler registers handler to receive every event of type E broadcast on c. Handlers run in the
// order they were added.
func AddHandler[E any](c *Channel, handler func(E)) HandlerID {
	eventType := typeOf[E]()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.lastID++
	id := c.lastID

	registry, ok := c.registries.Get(eventType)
	if !ok {
		registry = &handlerRegistry{}
		c.registries.Put(eventType, registry)
	}
	registry.handlers = append(registry.handlers, registeredHandler{id: id, handler: handler})

	c.logger.Debug("Channel::AddHandler", slog.String("Event", eventType.String()), slog.Uint64("ID", uint64(id)))
	return id
}

// RemoveHandler unregisters the handler for E that was returned id by AddHandler. It returns an error
// wrapping ErrHandlerNotRegistered if no such handler is registered.
func RemoveHandler[E any](c *Channel, id HandlerID) error {
	eventType := typeOf[E]()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	registry, ok := c.registries.Get(eventType)
	if !ok {
		return errors.Wrapf(ErrHandlerNotRegistered, "no handlers are registered for %s", eventType)
	}

	index := slices.IndexFunc(registry.handlers, func(h registeredHandler) bool {
		return h.id == id
	})
	if index < 0 {
		return errors.Wrapf(ErrHandlerNotRegistered, "handler %d is not registered for %s", id, eventType)
	}

	registry.handlers = slices.Delete(registry.handlers, index, index+1)
	if len(registry.handlers) == 0 {
		c.registries.Delete(eventType)
	}

	c.logger.Debug("Channel::RemoveHandler", slog.String("Event", eventType.String()), slog.Uint64("ID", uint64(id)))
	return nil
}

// Broadcast synchronously invokes every handler registered for E with event. The set of handlers is
// captured before the first one runs: handlers added during the broadcast do not receive this event,
// and handlers removed during the broadcast still do.
func Broadcast[E any](c *Channel, event E) {
	eventType := typeOf[E]()

	c.mutex.Lock()
	var snapshot []registeredHandler
	registry, ok := c.registries.Get(eventType)
	if ok {
		snapshot = slices.Clone(registry.handlers)
	}
	c.mutex.Unlock()

	for _, registered := range snapshot {
		registered.handler.(func(E))(event)
	}
}

// HandlerCount returns the number of handlers registered for E
func HandlerCount[E any](c *Channel) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	registry, ok := c.registries.Get(typeOf[E]())
	if !ok {
		return 0
	}

	return len(registry.handlers)
}
