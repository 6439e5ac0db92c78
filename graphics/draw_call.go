package graphics

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// DrawCall describes an indexed draw in terms of resource handles. Texture may be left as the zero
// handle for an untextured draw.
type DrawCall struct {
	VertexBuffer VertexBufferHandle
	IndexBuffer  IndexBufferHandle
	Texture      TextureHandle
}

// Render resolves the handles in call and draws it. A draw call that refers to a resource which has
// since been destroyed is skipped rather than failed: Render returns false and no error. Errors are
// only returned from the device.
func (c *Context) Render(call DrawCall) (bool, error) {
	command, ok := c.resolve(call)
	if !ok {
		c.logger.Debug("Context::Render skipped draw call with stale handle",
			slog.Any("VertexBuffer", call.VertexBuffer),
			slog.Any("IndexBuffer", call.IndexBuffer),
			slog.Any("Texture", call.Texture))
		return false, nil
	}

	err := c.device.DrawIndexed(command)
	if err != nil {
		return false, errors.Wrap(err, "draw failed")
	}

	return true, nil
}

func (c *Context) resolve(call DrawCall) (DrawCommand, bool) {
	var command DrawCommand

	vertices, ok := c.vertexBuffers.Lookup(call.VertexBuffer)
	if !ok {
		return command, false
	}
	command.VertexBuffer = vertices.id
	command.Stride = vertices.stride

	indices, ok := c.indexBuffers.Lookup(call.IndexBuffer)
	if !ok {
		return command, false
	}
	command.IndexBuffer = indices.id
	command.IndexCount = indices.indexCount

	if !call.Texture.IsZero() {
		tex, ok := c.textures.Lookup(call.Texture)
		if !ok {
			return command, false
		}
		command.Texture = tex.id
	}

	return command, true
}
