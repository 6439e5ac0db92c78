package event

// WindowResize is broadcast when the framebuffer of the window changes size
type WindowResize struct {
	Width  int
	Height int
}

// WindowClose is broadcast when the user asks for the window to close
type WindowClose struct{}

// KeyPressed is broadcast when a key goes down
type KeyPressed struct {
	Key int
}
