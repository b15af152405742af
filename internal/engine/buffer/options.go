package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPath binds the buffer to a storage path.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}
