package graphics

import (
	"context"
	"fmt"
	"strings"

	"github.com/bolder-engine/bolder/resource"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ContextCreateFlags indicate specific context behaviors to activate
type ContextCreateFlags int32

const (
	// ContextCreateSynchronized creates the context's resource managers with
	// resource.ManagerCreateSynchronized, so resources may be looked up while another goroutine
	// creates or destroys them
	ContextCreateSynchronized ContextCreateFlags = 1 << iota
)

func (f ContextCreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	if f&ContextCreateSynchronized != 0 {
		names = append(names, "ContextCreateSynchronized")
	}
	if remaining := f &^ ContextCreateSynchronized; remaining != 0 {
		names = append(names, fmt.Sprintf("ContextCreateFlags(%#x)", int32(remaining)))
	}

	return strings.Join(names, "|")
}

const (
	// DefaultCapacity is the number of resources of each kind a context can hold when no capacity
	// is provided via ContextCreateOptions
	DefaultCapacity int = 1 << resourceIndexBits
)

// ContextCreateOptions contains optional settings when creating a Context
type ContextCreateOptions struct {
	Flags ContextCreateFlags

	// IndexBufferCapacity, VertexBufferCapacity and TextureCapacity are the maximum number of live
	// resources of each kind. Zero selects DefaultCapacity, which is also the largest permitted value.
	IndexBufferCapacity  int
	VertexBufferCapacity int
	TextureCapacity      int
}

type indexBuffer struct {
	id         uint32
	indexCount int
}

type vertexBuffer struct {
	id          uint32
	vertexCount int
	stride      int
}

type texture struct {
	id         uint32
	width      int
	height     int
	levelCount int
}

// Context owns every resource created on a Device. Resources are referred to with handles, which are
// checked on every use so that a destroyed resource is never handed to the Device.
type Context struct {
	logger *slog.Logger
	device Device

	indexBuffers  *resource.Manager[IndexBufferLayout, indexBuffer]
	vertexBuffers *resource.Manager[VertexBufferLayout, vertexBuffer]
	textures      *resource.Manager[TextureLayout, texture]
}

func capacityOrDefault(capacity int) int {
	if capacity == 0 {
		return DefaultCapacity
	}

	return capacity
}

// NewContext creates a Context that creates its resources on device
//
// logger - The logger that context operations will be traced to
//
// device - The native graphics API
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewContext(logger *slog.Logger, device Device, options ContextCreateOptions) (*Context, error) {
	if device == nil {
		return nil, errors.New("attempted to create a context with a nil device")
	}

	var managerFlags resource.ManagerCreateFlags
	if options.Flags&ContextCreateSynchronized != 0 {
		managerFlags |= resource.ManagerCreateSynchronized
	}

	c := &Context{
		logger: logger,
		device: device,
	}

	var err error
	c.indexBuffers, err = resource.NewManager[IndexBufferLayout, indexBuffer](logger, capacityOrDefault(options.IndexBufferCapacity), resource.ManagerCreateOptions{
		Flags: managerFlags,
		Name:  "IndexBuffers",
	})
	if err != nil {
		return nil, err
	}

	c.vertexBuffers, err = resource.NewManager[VertexBufferLayout, vertexBuffer](logger, capacityOrDefault(options.VertexBufferCapacity), resource.ManagerCreateOptions{
		Flags: managerFlags,
		Name:  "VertexBuffers",
	})
	if err != nil {
		return nil, err
	}

	c.textures, err = resource.NewManager[TextureLayout, texture](logger, capacityOrDefault(options.TextureCapacity), resource.ManagerCreateOptions{
		Flags: managerFlags,
		Name:  "Textures",
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Context::New", slog.String("Flags", options.Flags.String()))
	return c, nil
}

// Destroy deletes every live resource from the device. Every resource is attempted even if some of
// the deletes fail, and the failures are returned together.
func (c *Context) Destroy() error {
	c.logger.Debug("Context::Destroy")

	var err error
	err = errors.CombineErrors(err, destroyAll(c.logger, c.indexBuffers, func(buffer *indexBuffer) error {
		return c.device.DeleteIndexBuffer(buffer.id)
	}))
	err = errors.CombineErrors(err, destroyAll(c.logger, c.vertexBuffers, func(buffer *vertexBuffer) error {
		return c.device.DeleteVertexBuffer(buffer.id)
	}))
	err = errors.CombineErrors(err, destroyAll(c.logger, c.textures, func(tex *texture) error {
		return c.device.DeleteTexture(tex.id)
	}))

	return err
}

func destroyAll[L resource.Layout, T any](logger *slog.Logger, m *resource.Manager[L, T], release func(*T) error) error {
	var handles []resource.Handle[L]
	m.Each(func(handle resource.Handle[L], _ *T) bool {
		handles = append(handles, handle)
		return true
	})

	if len(handles) > 0 {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "[UNRELEASED RESOURCES] destroying live resources with context",
			slog.String("Manager", m.Name()),
			slog.Int("Count", len(handles)))
	}

	var err error
	for _, handle := range handles {
		err = errors.CombineErrors(err, destroyResource(m, handle, release))
	}

	return err
}

// destroyResource takes handle's value out of m and then releases the device object it referred to.
// Handle errors are reported before anything is released.
func destroyResource[L resource.Layout, T any](m *resource.Manager[L, T], handle resource.Handle[L], release func(*T) error) error {
	released, err := m.Take(handle)
	if err != nil {
		return err
	}

	return release(&released)
}

// SetViewport sets the region of the window that draws are rendered to
func (c *Context) SetViewport(x, y, width, height int) {
	c.logger.Debug("Context::SetViewport", slog.Int("Width", width), slog.Int("Height", height))
	c.device.SetViewport(x, y, width, height)
}

// Clear clears the screen
func (c *Context) Clear() {
	c.device.Clear()
}

// Statistics returns the combined slot usage of every resource kind
func (c *Context) Statistics() resource.Statistics {
	var stats resource.Statistics
	c.indexBuffers.AddStatistics(&stats)
	c.vertexBuffers.AddStatistics(&stats)
	c.textures.AddStatistics(&stats)
	return stats
}
