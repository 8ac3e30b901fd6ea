package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RendererFunc adapts a function to SystemRenderer
type RendererFunc func(ctx Context, c *Canvas)

// Render implements SystemRenderer
func (f RendererFunc) Render(ctx Context, c *Canvas) { f(ctx, c) }
