package media

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = time.Hour
)

// resultCache memoizes provider search results so repeated synthesis runs
// for similar businesses do not spend provider quota. Keyed by business
// type, section and query because search terms are ranked per section and
// two types can share a term with very different intent.
type resultCache struct {
	entries *lru.LRU[string, []model.MediaAsset]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		entries: lru.NewLRU[string, []model.MediaAsset](size, nil, ttl),
	}
}

func cacheKey(bt model.BusinessType, section, query string) string {
	return string(bt) + "/" + section + "/" + query
}

func (c *resultCache) get(bt model.BusinessType, section, query string) ([]model.MediaAsset, bool) {
	return c.entries.Get(cacheKey(bt, section, query))
}

func (c *resultCache) put(bt model.BusinessType, section, query string, assets []model.MediaAsset) {
	c.entries.Add(cacheKey(bt, section, query), assets)
}

func (c *resultCache) len() int {
	return c.entries.Len()
}
