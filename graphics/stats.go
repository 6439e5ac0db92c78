package graphics

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// BuildStatsString returns a JSON document describing the slots of every resource kind
func (c *Context) BuildStatsString() string {
	writer := jwriter.NewWriter()

	obj := writer.Object()

	stats := c.Statistics()
	total := obj.Name("Total").Object()
	total.Name("Capacity").Int(stats.Capacity)
	total.Name("Size").Int(stats.Size)
	total.Name("Free").Int(stats.Free())
	total.End()

	c.indexBuffers.BuildStatsString(obj.Name("IndexBuffers"))
	c.vertexBuffers.BuildStatsString(obj.Name("VertexBuffers"))
	c.textures.BuildStatsString(obj.Name("Textures"))

	obj.End()

	return string(writer.Bytes())
}
