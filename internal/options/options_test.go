package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type encodeConfig struct {
	width     int
	bigEndian bool
	calls     []string
}

var errBadWidth = errors.New("bad width")

func withWidth(w int) Option[*encodeConfig] {
	return New(func(c *encodeConfig) error {
		if w != 1 && w != 2 && w != 4 && w != 8 {
			return errBadWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withBigEndian() Option[*encodeConfig] {
	return NoError(func(c *encodeConfig) {
		c.bigEndian = true
		c.calls = append(c.calls, "endian")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &encodeConfig{}
		require.NoError(t, Apply(cfg, withWidth(4), withBigEndian()))
		require.Equal(t, 4, cfg.width)
		require.True(t, cfg.bigEndian)
		require.Equal(t, []string{"width", "endian"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &encodeConfig{}
		err := Apply(cfg, withWidth(8), withWidth(3), withBigEndian())
		require.ErrorIs(t, err, errBadWidth)
		require.Equal(t, 8, cfg.width)
		require.False(t, cfg.bigEndian)
		require.Equal(t, []string{"width"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &encodeConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, encodeConfig{}, *cfg)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &encodeConfig{}
		require.NoError(t, Apply(cfg, nil, withBigEndian(), nil))
		require.True(t, cfg.bigEndian)
	})
}

func TestOption_WorksWithValueTypes(t *testing.T) {
	counter := 0
	opt := NoError(func(step int) { counter += step })

	require.NoError(t, Apply(3, opt, opt))
	require.Equal(t, 6, counter)
}
