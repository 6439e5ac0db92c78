package graphics_test

import (
	"image"
	"testing"

	"github.com/bolder-engine/bolder/event"
	"github.com/bolder-engine/bolder/graphics"
	"github.com/stretchr/testify/require"
)

func TestRenderer_WindowResize(t *testing.T) {
	ctx, device := newHeadlessContext(t, graphics.ContextCreateOptions{})
	channel := event.NewChannel(testLogger())

	renderer := graphics.NewRenderer(testLogger(), channel, ctx)
	require.Equal(t, 1, event.HandlerCount[event.WindowResize](channel))

	event.Broadcast(channel, event.WindowResize{Width: 1280, Height: 720})
	require.Equal(t, image.Rect(0, 0, 1280, 720), device.Viewport())

	require.NoError(t, renderer.Close())
	require.Equal(t, 0, event.HandlerCount[event.WindowResize](channel))

	event.Broadcast(channel, event.WindowResize{Width: 10, Height: 10})
	require.Equal(t, image.Rect(0, 0, 1280, 720), device.Viewport())

	require.Error(t, renderer.Close())
}

func TestRenderer_Render(t *testing.T) {
	ctx, device := newHeadlessContext(t, graphics.ContextCreateOptions{})
	channel := event.NewChannel(testLogger())
	renderer := graphics.NewRenderer(testLogger(), channel, ctx)
	defer func() {
		require.NoError(t, renderer.Close())
	}()

	first := createQuad(t, ctx)
	second := createQuad(t, ctx)

	drawn, err := renderer.Render(first.drawCall(), second.drawCall())
	require.NoError(t, err)
	require.Equal(t, 2, drawn)
	require.Equal(t, 1, device.ClearCount())

	require.NoError(t, ctx.DestroyTexture2D(first.texture))

	drawn, err = renderer.Render(first.drawCall(), second.drawCall())
	require.NoError(t, err)
	require.Equal(t, 1, drawn)
	require.Equal(t, 2, device.ClearCount())
	require.Len(t, device.Draws(), 3)
}

func TestRenderer_RenderStopsAtDeviceError(t *testing.T) {
	ctx, device := newHeadlessContext(t, graphics.ContextCreateOptions{})
	renderer := graphics.NewRenderer(testLogger(), event.NewChannel(testLogger()), ctx)

	good := createQuad(t, ctx)
	short, err := ctx.CreateVertexBuffer(1, 5, quadVertices)
	require.NoError(t, err)
	bad := graphics.DrawCall{VertexBuffer: short, IndexBuffer: good.indices}

	drawn, err := renderer.Render(good.drawCall(), bad, good.drawCall())
	require.Error(t, err)
	require.Equal(t, 1, drawn)
	require.Len(t, device.Draws(), 1)
}
