package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
)

// cachingClient wraps a Client with an in-memory LRU so repeated scoring of
// identical content does not re-hit the provider
type cachingClient struct {
	inner Client
	cache *expirable.LRU[string, Response]
}

func newCachingClient(inner Client, size int, ttl time.Duration) *cachingClient {
	return &cachingClient{
		inner: inner,
		cache: expirable.NewLRU[string, Response](size, nil, ttl),
	}
}

func (c *cachingClient) Name() Provider  { return c.inner.Name() }
func (c *cachingClient) Available() bool { return c.inner.Available() }

func (c *cachingClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	key := cacheKey(req)
	if resp, ok := c.cache.Get(key); ok {
		log.Debug().
			Str("provider", string(c.inner.Name())).
			Str("model", req.Model).
			Msg("llm cache hit")
		resp.Cached = true
		return &resp, nil
	}

	resp, err := c.inner.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *resp)
	return resp, nil
}

// cacheKey hashes the full request so any prompt or model change misses
func cacheKey(req *Request) string {
	h := sha256.New()
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(req.System))
	for _, m := range req.Messages {
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
	}
	return hex.EncodeToString(h.Sum(nil))
}
