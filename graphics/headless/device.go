// Package headless provides a graphics.Device that keeps every object in memory. It is intended for
// tests and tools that exercise a graphics.Context without a GPU.
package headless

import (
	"image"
	"sync"

	"github.com/bolder-engine/bolder/graphics"
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

type vertexData struct {
	data   []float32
	stride int
}

// Device is an in-memory graphics.Device. Uploaded data is copied, and draws are validated against
// the objects they refer to and then recorded.
type Device struct {
	mutex sync.Mutex

	lastID        uint32
	indexBuffers  *swiss.Map[uint32, []uint32]
	vertexBuffers *swiss.Map[uint32, vertexData]
	textures      *swiss.Map[uint32, []*image.RGBA]

	viewport image.Rectangle
	clears   int
	draws    []graphics.DrawCommand
}

var _ graphics.Device = &Device{}

func NewDevice() *Device {
	return &Device{
		indexBuffers:  swiss.NewMap[uint32, []uint32](16),
		vertexBuffers: swiss.NewMap[uint32, vertexData](16),
		textures:      swiss.NewMap[uint32, []*image.RGBA](16),
	}
}

func (d *Device) nextID() uint32 {
	d.lastID++
	return d.lastID
}

func (d *Device) CreateIndexBuffer(indices []uint32) (uint32, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	id := d.nextID()
	d.indexBuffers.Put(id, slices.Clone(indices))
	return id, nil
}

func (d *Device) DeleteIndexBuffer(id uint32) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.indexBuffers.Delete(id) {
		return errors.Newf("index buffer %d does not exist", id)
	}
	return nil
}

func (d *Device) CreateVertexBuffer(data []float32, stride int) (uint32, error) {
	if stride <= 0 || len(data)%stride != 0 {
		return 0, errors.Newf("vertex data of length %d cannot be divided into vertices of stride %d", len(data), stride)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	id := d.nextID()
	d.vertexBuffers.Put(id, vertexData{data: slices.Clone(data), stride: stride})
	return id, nil
}

func (d *Device) DeleteVertexBuffer(id uint32) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.vertexBuffers.Delete(id) {
		return errors.Newf("vertex buffer %d does not exist", id)
	}
	return nil
}

func (d *Device) CreateTexture2D(levels []*image.RGBA) (uint32, error) {
	if len(levels) == 0 {
		return 0, errors.New("attempted to create a texture with no levels")
	}

	copied := make([]*image.RGBA, len(levels))
	for i, level := range levels {
		copied[i] = &image.RGBA{
			Pix:    slices.Clone(level.Pix),
			Stride: level.Stride,
			Rect:   level.Rect,
		}
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	id := d.nextID()
	d.textures.Put(id, copied)
	return id, nil
}

func (d *Device) DeleteTexture(id uint32) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.textures.Delete(id) {
		return errors.Newf("texture %d does not exist", id)
	}
	return nil
}

func (d *Device) Clear() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.clears++
}

func (d *Device) SetViewport(x, y, width, height int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.viewport = image.Rect(x, y, x+width, y+height)
}

func (d *Device) DrawIndexed(command graphics.DrawCommand) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	vertices, ok := d.vertexBuffers.Get(command.VertexBuffer)
	if !ok {
		return errors.Newf("draw refers to missing vertex buffer %d", command.VertexBuffer)
	}
	if vertices.stride != command.Stride {
		return errors.Newf("draw uses stride %d with vertex buffer %d of stride %d", command.Stride, command.VertexBuffer, vertices.stride)
	}

	indices, ok := d.indexBuffers.Get(command.IndexBuffer)
	if !ok {
		return errors.Newf("draw refers to missing index buffer %d", command.IndexBuffer)
	}
	if command.IndexCount > len(indices) {
		return errors.Newf("draw uses %d indices from index buffer %d of size %d", command.IndexCount, command.IndexBuffer, len(indices))
	}

	vertexCount := uint32(len(vertices.data) / vertices.stride)
	for _, index := range indices[:command.IndexCount] {
		if index >= vertexCount {
			return errors.Newf("index %d is out of range for vertex buffer %d with %d vertices", index, command.VertexBuffer, vertexCount)
		}
	}

	if command.Texture != 0 && !d.hasTexture(command.Texture) {
		return errors.Newf("draw refers to missing texture %d", command.Texture)
	}

	d.draws = append(d.draws, command)
	return nil
}

func (d *Device) hasTexture(id uint32) bool {
	_, ok := d.textures.Get(id)
	return ok
}

// Viewport returns the most recent viewport
func (d *Device) Viewport() image.Rectangle {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.viewport
}

// ClearCount returns the number of times Clear has been called
func (d *Device) ClearCount() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.clears
}

// Draws returns every draw recorded so far, in order
func (d *Device) Draws() []graphics.DrawCommand {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return slices.Clone(d.draws)
}

// ObjectCount returns the number of live objects of every kind
func (d *Device) ObjectCount() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.indexBuffers.Count() + d.vertexBuffers.Count() + d.textures.Count()
}

// TextureLevels returns the uploaded levels of a texture
func (d *Device) TextureLevels(id uint32) ([]*image.RGBA, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.textures.Get(id)
}
