package graphics

import (
	"github.com/bolder-engine/bolder/event"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// Renderer draws frames with a Context, and keeps the viewport matched to the window by listening for
// event.WindowResize on a channel
type Renderer struct {
	logger  *slog.Logger
	context *Context
	resize  *event.Subscription
}

func NewRenderer(logger *slog.Logger, channel *event.Channel, context *Context) *Renderer {
	r := &Renderer{
		logger:  logger,
		context: context,
	}

	r.resize = event.Subscribe(channel, func(e event.WindowResize) {
		r.context.SetViewport(0, 0, e.Width, e.Height)
	})

	return r
}

// Render clears the screen and draws each call in order. It returns the number of calls that were
// drawn; calls referring to destroyed resources are skipped. Rendering stops at the first device error.
func (r *Renderer) Render(calls ...DrawCall) (int, error) {
	r.context.Clear()

	drawn := 0
	for i, call := range calls {
		ok, err := r.context.Render(call)
		if err != nil {
			return drawn, errors.Wrapf(err, "draw call %d", i)
		}

		if ok {
			drawn++
		}
	}

	if drawn < len(calls) {
		r.logger.Debug("Renderer::Render", slog.Int("Drawn", drawn), slog.Int("Skipped", len(calls)-drawn))
	}

	return drawn, nil
}

// Close stops the renderer from listening for window events. It does not destroy the Context.
func (r *Renderer) Close() error {
	return r.resize.Close()
}
