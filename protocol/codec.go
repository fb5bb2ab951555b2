package protocol

// Codec encodes packets to wire frames and decodes candidate frames back
// into packets. Integrity checking is on by default; builds for links that
// do not carry the checksum suffix disable it with WithoutChecksum.
//
// A Codec is stateless apart from its configuration and may be shared.
type Codec struct {
	withChecksum bool
}

// Option is a functional option for configuring a Codec.
type Option func(*Codec)

// WithoutChecksum disables the trailing CRC-16 field on encode and skips
// checksum validation on decode.
//
// Example:
//
//	codec := protocol.NewCodec(protocol.WithoutChecksum())
func WithoutChecksum() Option {
	return func(c *Codec) {
		c.withChecksum = false
	}
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{withChecksum: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChecksumEnabled reports whether the codec validates and emits checksums.
func (c *Codec) ChecksumEnabled() bool {
	return c.withChecksum
}
