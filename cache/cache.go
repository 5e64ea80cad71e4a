// Package cache fronts tile lookups with memcached. Keys are scoped by
// layer handle so that dropping a layer never serves stale tiles under
// a reused grid coordinate.
package cache

import (
	"fmt"

	"github.com/nci/gomemcache/memcache"
)

// TileCache caches encoded tile records. A nil TileCache is valid and
// caches nothing, so callers need no memcached deployment to function.
type TileCache struct {
	mc *memcache.Client
}

// New connects to the given memcached servers. An empty server list
// yields a nil cache.
func New(servers []string) *TileCache {
	if len(servers) == 0 {
		return nil
	}
	return &TileCache{mc: memcache.New(servers...)}
}

func tileKey(layerID string, col, row int) string {
	return fmt.Sprintf("tb/%s/%d/%d", layerID, col, row)
}

// Get returns the cached records for a tile, or ok=false on a miss.
// Cache errors degrade to a miss.
func (c *TileCache) Get(layerID string, col, row int) ([][]byte, bool) {
	if c == nil {
		return nil, false
	}
	item, err := c.mc.Get(tileKey(layerID, col, row))
	if err != nil {
		return nil, false
	}
	records, err := decodeRecords(item.Value)
	if err != nil {
		return nil, false
	}
	return records, true
}

// Set stores the records for a tile. Failures are ignored, the cache
// is advisory.
func (c *TileCache) Set(layerID string, col, row int, records [][]byte) {
	if c == nil {
		return
	}
	c.mc.Set(&memcache.Item{
		Key:   tileKey(layerID, col, row),
		Value: encodeRecords(records),
	})
}
