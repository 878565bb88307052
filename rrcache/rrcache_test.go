package rrcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodarii/hnsresource/rrcache"
)

func Test_DecodeCached_MissThenHit(t *testing.T) {
	c, err := rrcache.New(16)
	require.NoError(t, err)

	blob := []byte{0x00, 0x01, 0x00, 0xC0, 0x00, 0x02, 0x01}

	digest := rrcache.Digest(blob)
	_, ok := c.Get(digest)
	assert.False(t, ok)

	res, err := rrcache.DecodeCached(c, blob)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)

	cached, ok := c.Get(digest)
	require.True(t, ok)
	assert.Same(t, res, cached)
}

func Test_New_ZeroSizeDisablesCache(t *testing.T) {
	c, err := rrcache.New(0)
	require.NoError(t, err)

	c.Put("x", nil)
	_, ok := c.Get("x")
	assert.False(t, ok)
}

func Test_DecodeCached_PropagatesDecodeError(t *testing.T) {
	c, err := rrcache.New(16)
	require.NoError(t, err)

	_, err = rrcache.DecodeCached(c, []byte{0x01})
	assert.Error(t, err)
}
