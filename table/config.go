package table

import (
	"fmt"

	"github.com/arloliu/fbst/compress"
	"github.com/arloliu/fbst/endian"
	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/internal/options"
	"github.com/arloliu/fbst/section"
)

// BuildConfig holds the construction options of a Table.
type BuildConfig struct {
	layout format.LayoutType
}

func newBuildConfig() *BuildConfig {
	return &BuildConfig{layout: format.LayoutInOrder}
}

// Option configures how New builds a Table.
type Option = options.Option[*BuildConfig]

// WithLayout selects the flat layout builder.
//
// Returns errs.ErrInvalidLayout for unknown layout types.
func WithLayout(layout format.LayoutType) Option {
	return options.New(func(c *BuildConfig) error {
		switch layout {
		case format.LayoutInOrder, format.LayoutMidpoint:
			c.layout = layout
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidLayout, layout)
		}
	})
}

// EncoderConfig holds the options of a single Encode call.
type EncoderConfig struct {
	header *section.Header
	codec  compress.Codec
	engine endian.EndianEngine
}

func newEncoderConfig() *EncoderConfig {
	header := section.NewHeader()

	return &EncoderConfig{
		header: header,
		codec:  compress.NewNoOpCompressor(),
		engine: header.Flag.GetEndianEngine(),
	}
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*EncoderConfig]

// WithLittleEndian stores the header fields and values little-endian. This is
// the default.
func WithLittleEndian() EncodeOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithLittleEndian()
		c.engine = c.header.Flag.GetEndianEngine()
	})
}

// WithBigEndian stores the header fields and values big-endian.
func WithBigEndian() EncodeOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithBigEndian()
		c.engine = c.header.Flag.GetEndianEngine()
	})
}

// WithCompression selects the payload codec.
//
// Returns errs.ErrInvalidCompression for unknown compression types.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(c *EncoderConfig) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		c.codec = codec
		c.header.Flag.SetCompression(compression)

		return nil
	})
}
