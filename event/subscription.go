package event

// Subscription is a handler registration that can be released without knowing its event type
type Subscription struct {
	id     HandlerID
	remove func() error
}

// Subscribe registers handler for E on c, and returns a Subscription that removes it again when closed
func Subscribe[E any](c *Channel, handler func(E)) *Subscription {
	id := AddHandler[E](c, handler)
	return &Subscription{
		id: id,
		remove: func() error {
			return RemoveHandler[E](c, id)
		},
	}
}

func (s *Subscription) ID() HandlerID {
	return s.id
}

// Close removes the handler from its channel. Closing a subscription twice returns an error wrapping
// ErrHandlerNotRegistered.
func (s *Subscription) Close() error {
	return s.remove()
}
