package graphics

//go:generate mockgen -source device.go -destination mocks/device.go -package mock_graphics

import "image"

// DrawCommand is a draw with every handle already resolved to a device object id
type DrawCommand struct {
	VertexBuffer uint32
	// Stride is the number of float32 components per vertex
	Stride      int
	IndexBuffer uint32
	IndexCount  int
	// Texture is 0 for an untextured draw
	Texture uint32
}

// Device is the native graphics API that a Context creates resources on. Object ids returned by a
// Device are never 0.
type Device interface {
	CreateIndexBuffer(indices []uint32) (uint32, error)
	DeleteIndexBuffer(id uint32) error

	CreateVertexBuffer(data []float32, stride int) (uint32, error)
	DeleteVertexBuffer(id uint32) error

	// CreateTexture2D uploads a texture. levels[0] is the base image and any further entries
	// are successive mip levels.
	CreateTexture2D(levels []*image.RGBA) (uint32, error)
	DeleteTexture(id uint32) error

	Clear()
	SetViewport(x, y, width, height int)
	DrawIndexed(command DrawCommand) error
}
