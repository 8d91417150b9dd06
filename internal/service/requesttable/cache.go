package requesttable

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/easi-app/easi-server/internal/i18n"
)

type columnKey struct {
	table ActiveTable
	lang  string
}

// ColumnCache memoizes BuildColumns per view and language.
type ColumnCache struct {
	cache *lru.Cache[columnKey, []Column]
}

// NewColumnCache creates a ColumnCache holding up to size column sets.
func NewColumnCache(size int) (*ColumnCache, error) {
	c, err := lru.New[columnKey, []Column](size)
	if err != nil {
		return nil, fmt.Errorf("create column cache: %w", err)
	}
	return &ColumnCache{cache: c}, nil
}

// Columns returns the cached columns for (active, t.Lang()), building them on a miss.
// Callers must not modify the returned slice.
func (c *ColumnCache) Columns(active ActiveTable, t i18n.Translator) ([]Column, error) {
	key := columnKey{table: active, lang: t.Lang()}
	if cols, ok := c.cache.Get(key); ok {
		return cols, nil
	}

	cols, err := BuildColumns(active, t)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, cols)
	return cols, nil
}

// Len returns the number of cached column sets.
func (c *ColumnCache) Len() int {
	return c.cache.Len()
}
