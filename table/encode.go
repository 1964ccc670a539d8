package table

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/endian"
	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/internal/hash"
	"github.com/arloliu/fbst/internal/options"
	"github.com/arloliu/fbst/internal/pool"
	"github.com/arloliu/fbst/section"
)

// Encode serializes the table into a self-describing blob.
//
// Returns:
//   - []byte: header followed by the (compressed) payload
//   - error: an option error, or errs.ErrInvalidPayloadSize if the payload does not fit the header
func (t *Table[T]) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	width := widthOf[T]()
	header := cfg.header
	header.Flag.SetWidth(width)
	header.Flag.SetSigned(isSigned[T]())
	header.Flag.SetLayout(t.layout)

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(t.buf) * width.Bytes())
	buf.B = appendValues(buf.B, t.buf, width, cfg.engine)

	raw := buf.Bytes()
	if uint64(len(raw)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadSize, len(raw))
	}

	payload, err := cfg.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(payload)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d compressed bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	header.Count = uint64(len(t.buf))
	header.RawSize = uint32(len(raw))
	header.PayloadSize = uint32(len(payload))
	header.Checksum = hash.Checksum(raw)

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

func appendValues[T constraints.Integer](dst []byte, values []T, width format.Width, engine endian.EndianEngine) []byte {
	for _, v := range values {
		dst = endian.AppendUint(engine, dst, uint64(v), width.Bytes())
	}

	return dst
}
