package viewport

// ViewportBuilderOption is a functional option for configuring a viewport
// during creation.
type ViewportBuilderOption func(*engineViewport)

// WithTitle sets the viewport title. On desktop this is the window title;
// ignored on platforms without window decorations.
//
// Parameters:
//   - title: the title text
//
// Returns:
//   - ViewportBuilderOption: the configured option
func WithTitle(title string) ViewportBuilderOption {
	return func(v *engineViewport) {
		v.title = title
	}
}

// WithWidth sets the initial surface width in pixels.
//
// Parameters:
//   - width: width in pixels
//
// Returns:
//   - ViewportBuilderOption: the configured option
func WithWidth(width int) ViewportBuilderOption {
	return func(v *engineViewport) {
		if width > 0 {
			v.width = width
		}
	}
}

// WithHeight sets the initial surface height in pixels.
//
// Parameters:
//   - height: height in pixels
//
// Returns:
//   - ViewportBuilderOption: the configured option
func WithHeight(height int) ViewportBuilderOption {
	return func(v *engineViewport) {
		if height > 0 {
			v.height = height
		}
	}
}
