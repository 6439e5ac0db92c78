package graphics

import (
	"context"
	"image"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// rollback releases a device object whose handle could not be issued. The handle error is the one
// reported to the caller; a failed release is only logged.
func (c *Context) rollback(kind string, id uint32, release func(uint32) error) {
	err := release(id)
	if err != nil {
		c.logger.LogAttrs(context.Background(), slog.LevelError, "error attempting to delete device object after failing to issue a handle",
			slog.String("Kind", kind),
			slog.Uint64("ID", uint64(id)),
			slog.Any("error", err))
	}
}

// CreateIndexBuffer uploads indices to the device
func (c *Context) CreateIndexBuffer(indices []uint32) (IndexBufferHandle, error) {
	c.logger.Debug("Context::CreateIndexBuffer", slog.Int("IndexCount", len(indices)))

	if len(indices) == 0 {
		return IndexBufferHandle{}, errors.New("attempted to create an index buffer with no indices")
	}

	id, err := c.device.CreateIndexBuffer(indices)
	if err != nil {
		return IndexBufferHandle{}, errors.Wrap(err, "could not create index buffer")
	}

	handle, err := c.indexBuffers.Add(indexBuffer{id: id, indexCount: len(indices)})
	if err != nil {
		c.rollback("IndexBuffer", id, c.device.DeleteIndexBuffer)
		return IndexBufferHandle{}, err
	}

	return handle, nil
}

// DestroyIndexBuffer deletes an index buffer from the device. Destroying a buffer twice, or with a
// stale handle, returns a resource.ResourceError and leaves the device untouched.
func (c *Context) DestroyIndexBuffer(handle IndexBufferHandle) error {
	c.logger.Debug("Context::DestroyIndexBuffer", slog.Any("Handle", handle))

	return destroyResource(c.indexBuffers, handle, func(buffer *indexBuffer) error {
		return c.device.DeleteIndexBuffer(buffer.id)
	})
}

// CreateVertexBuffer uploads vertexCount vertices of stride float32 components each to the device.
// data must contain at least vertexCount*stride values.
func (c *Context) CreateVertexBuffer(vertexCount, stride int, data []float32) (VertexBufferHandle, error) {
	c.logger.Debug("Context::CreateVertexBuffer", slog.Int("VertexCount", vertexCount), slog.Int("Stride", stride))

	if vertexCount <= 0 {
		return VertexBufferHandle{}, errors.Newf("attempted to create a vertex buffer with %d vertices", vertexCount)
	} else if stride <= 0 {
		return VertexBufferHandle{}, errors.Newf("attempted to create a vertex buffer with stride %d", stride)
	} else if len(data) < vertexCount*stride {
		return VertexBufferHandle{}, errors.Newf("vertex data has %d values, but %d vertices of stride %d require %d", len(data), vertexCount, stride, vertexCount*stride)
	}

	id, err := c.device.CreateVertexBuffer(data[:vertexCount*stride], stride)
	if err != nil {
		return VertexBufferHandle{}, errors.Wrap(err, "could not create vertex buffer")
	}

	handle, err := c.vertexBuffers.Add(vertexBuffer{id: id, vertexCount: vertexCount, stride: stride})
	if err != nil {
		c.rollback("VertexBuffer", id, c.device.DeleteVertexBuffer)
		return VertexBufferHandle{}, err
	}

	return handle, nil
}

// DestroyVertexBuffer deletes a vertex buffer from the device
func (c *Context) DestroyVertexBuffer(handle VertexBufferHandle) error {
	c.logger.Debug("Context::DestroyVertexBuffer", slog.Any("Handle", handle))

	return destroyResource(c.vertexBuffers, handle, func(buffer *vertexBuffer) error {
		return c.device.DeleteVertexBuffer(buffer.id)
	})
}

// CreateTexture2D uploads img to the device. If useMipmap is set, a full mip chain is generated
// and uploaded with it.
func (c *Context) CreateTexture2D(img Image, useMipmap bool) (TextureHandle, error) {
	if img.Pixels == nil || img.Pixels.Bounds().Empty() {
		return TextureHandle{}, errors.New("attempted to create a texture from an empty image")
	}

	c.logger.Debug("Context::CreateTexture2D",
		slog.Int("Width", img.Width()),
		slog.Int("Height", img.Height()),
		slog.Bool("Mipmap", useMipmap))

	levels := []*image.RGBA{img.Pixels}
	if useMipmap {
		levels = img.MipChain()
	}

	id, err := c.device.CreateTexture2D(levels)
	if err != nil {
		return TextureHandle{}, errors.Wrap(err, "could not create texture")
	}

	handle, err := c.textures.Add(texture{
		id:         id,
		width:      img.Width(),
		height:     img.Height(),
		levelCount: len(levels),
	})
	if err != nil {
		c.rollback("Texture", id, c.device.DeleteTexture)
		return TextureHandle{}, err
	}

	return handle, nil
}

// DestroyTexture2D deletes a texture from the device
func (c *Context) DestroyTexture2D(handle TextureHandle) error {
	c.logger.Debug("Context::DestroyTexture2D", slog.Any("Handle", handle))

	return destroyResource(c.textures, handle, func(tex *texture) error {
		return c.device.DeleteTexture(tex.id)
	})
}
