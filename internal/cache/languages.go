package cache

import (
	"fmt"

	"github.com/sam365724/lemmy/internal/entity"
)

// LanguageCache holds the immutable language catalog, loaded once at
// startup. It only serves lookups, the allowed-set state always comes from
// the store.
type LanguageCache struct {
	all    []entity.Language
	byId   map[entity.LanguageId]entity.Language
	byCode map[string]entity.Language
}

func NewLanguageCache(languages []entity.Language) (*LanguageCache, error) {
	c := &LanguageCache{
		all:    languages,
		byId:   make(map[entity.LanguageId]entity.Language, len(languages)),
		byCode: make(map[string]entity.Language, len(languages)),
	}
	for _, l := range languages {
		if _, ok := c.byCode[l.Code]; ok {
			return nil, fmt.Errorf("duplicate language code %q", l.Code)
		}
		c.byId[l.Id] = l
		c.byCode[l.Code] = l
	}
	return c, nil
}

// All returns every catalog language in id order.
func (c *LanguageCache) All() []entity.Language {
	return c.all
}

func (c *LanguageCache) GetLanguageById(id entity.LanguageId) (*entity.Language, bool) {
	l, ok := c.byId[id]
	if !ok {
		return nil, false
	}
	return &l, true
}

func (c *LanguageCache) GetLanguageByCode(code string) (entity.Language, bool) {
	l, ok := c.byCode[code]
	return l, ok
}
