// Package rrcache is an optional, explicitly non-persistent memoization
// layer in front of hnsresource.Decode: decoding is a pure function of its
// input bytes, so the same blob digest always decodes to an equivalent
// Resource, making it safe to cache keyed on a digest of the blob.
//
// Grounded on blocky's cache/expirationcache LRU wrapper, simplified since
// decode results never need expiration — only eviction under memory
// pressure, which the LRU capacity bound already provides.
package rrcache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru"

	"github.com/nodarii/hnsresource/evt"
	"github.com/nodarii/hnsresource/hnsresource"
)

// Cache memoizes Decode results by blob digest.
type Cache struct {
	lru *lru.Cache
}

// New creates a Cache holding up to size entries. size <= 0 disables
// caching: Get always misses and Put is a no-op.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return &Cache{}, nil
	}

	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &Cache{lru: l}, nil
}

// Digest returns the cache key for a blob.
func Digest(blob []byte) string {
	sum := sha256.Sum256(blob)

	return hex.EncodeToString(sum[:])
}

// Get returns the cached Resource for digest, if present.
func (c *Cache) Get(digest string) (*hnsresource.Resource, bool) {
	if c.lru == nil {
		return nil, false
	}

	v, ok := c.lru.Get(digest)
	if !ok {
		evt.Bus().Publish(evt.CacheMiss, digest)

		return nil, false
	}

	evt.Bus().Publish(evt.CacheHit, digest)

	res, ok := v.(*hnsresource.Resource)

	return res, ok
}

// Put stores res under digest.
func (c *Cache) Put(digest string, res *hnsresource.Resource) {
	if c.lru == nil {
		return
	}

	c.lru.Add(digest, res)
}

// DecodeCached decodes blob, serving from and populating cache c.
func DecodeCached(c *Cache, blob []byte) (*hnsresource.Resource, error) {
	digest := Digest(blob)

	if res, ok := c.Get(digest); ok {
		return res, nil
	}

	res, err := hnsresource.Decode(blob)
	if err != nil {
		return nil, err
	}

	c.Put(digest, res)

	return res, nil
}
