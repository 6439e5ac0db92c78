package graphics

import "github.com/bolder-engine/bolder/resource"

// Every resource kind addresses up to 4096 slots and keeps 20 bits of generation.
const resourceIndexBits = 12

type IndexBufferLayout struct{}

func (IndexBufferLayout) IndexBits() uint { return resourceIndexBits }

type VertexBufferLayout struct{}

func (VertexBufferLayout) IndexBits() uint { return resourceIndexBits }

type TextureLayout struct{}

func (TextureLayout) IndexBits() uint { return resourceIndexBits }

// IndexBufferHandle refers to an index buffer created by a Context
type IndexBufferHandle = resource.Handle[IndexBufferLayout]

// VertexBufferHandle refers to a vertex buffer created by a Context
type VertexBufferHandle = resource.Handle[VertexBufferLayout]

// TextureHandle refers to a texture created by a Context. The zero TextureHandle is used by
// DrawCall to indicate an untextured draw.
type TextureHandle = resource.Handle[TextureLayout]
