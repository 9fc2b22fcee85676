package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// JSONCache keeps values JSON encoded in a freecache segment, keyed by string.
type JSONCache[T any] struct {
	cache         *freecache.Cache
	prefix        string
	expireSeconds int
}

// New creates a cache of sizeMB megabytes; freecache enforces a 512KB minimum.
func New[T any](prefix string, sizeMB, expireSeconds int) *JSONCache[T] {
	return &JSONCache[T]{
		cache:         freecache.NewCache(sizeMB * megabyte),
		prefix:        prefix,
		expireSeconds: expireSeconds,
	}
}

func (c *JSONCache[T]) key(k string) []byte {
	return []byte(c.prefix + "::" + k)
}

func (c *JSONCache[T]) Get(k string) (*T, bool) {
	valueBytes, err := c.cache.Get(c.key(k))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("cache [%s] get %s: %s", c.prefix, k, err)
		}
		return nil, false
	}

	value := new(T)
	if err := json.Unmarshal(valueBytes, value); err != nil {
		log.Errorf("cache [%s] unmarshal %s: %s", c.prefix, k, err)
		c.cache.Del(c.key(k))
		return nil, false
	}
	return value, true
}

func (c *JSONCache[T]) Set(k string, value *T) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return c.cache.Set(c.key(k), valueBytes, c.expireSeconds)
}

func (c *JSONCache[T]) Del(k string) bool {
	return c.cache.Del(c.key(k))
}

func (c *JSONCache[T]) Clear() {
	c.cache.Clear()
}

func (c *JSONCache[T]) EntryCount() int64 {
	return c.cache.EntryCount()
}
