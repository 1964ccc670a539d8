package pool

import (
	"bytes"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, _ = bb.Write([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(100)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abcdefgh"))
		bb.Grow(1)
		assert.Equal(t, 8+PayloadBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("abcdefgh"), bb.Bytes())
	})

	t.Run("large request wins", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.Equal(t, PayloadBufferDefaultSize*3, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := PayloadBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("buffers come back empty", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		again := p.Get()
		assert.Equal(t, 0, again.Len())
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := p.Get()
		bb.Grow(1024)
		require.Greater(t, bb.Cap(), 64)
		p.Put(bb)
		p.Put(nil)
	})

	t.Run("default payload pool", func(t *testing.T) {
		bb := GetPayloadBuffer()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())
		PutPayloadBuffer(bb)
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg conc.WaitGroup
		for i := range 32 {
			wg.Go(func() {
				bb := GetPayloadBuffer()
				defer PutPayloadBuffer(bb)

				_, _ = bb.Write([]byte{byte(i)})
				assert.Equal(t, []byte{byte(i)}, bb.Bytes())
			})
		}
		wg.Wait()
	})
}
