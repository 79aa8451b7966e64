package cache

import (
	"testing"

	"github.com/sam365724/lemmy/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLanguages() []entity.Language {
	return []entity.Language{
		{Id: 1, Code: "und", Name: "Undetermined"},
		{Id: 2, Code: "en", Name: "English"},
		{Id: 3, Code: "fi", Name: "Finnish"},
	}
}

func TestLanguageCache(t *testing.T) {
	c, err := NewLanguageCache(testLanguages())
	require.NoError(t, err)

	assert.Len(t, c.All(), 3)

	l, ok := c.GetLanguageById(2)
	assert.True(t, ok)
	assert.Equal(t, "en", l.Code)

	_, ok = c.GetLanguageById(42)
	assert.False(t, ok)

	lang, ok := c.GetLanguageByCode("fi")
	assert.True(t, ok)
	assert.Equal(t, entity.LanguageId(3), lang.Id)

	_, ok = c.GetLanguageByCode("xx")
	assert.False(t, ok)
}

func TestLanguageCacheDuplicateCode(t *testing.T) {
	_, err := NewLanguageCache([]entity.Language{
		{Id: 1, Code: "en", Name: "English"},
		{Id: 2, Code: "en", Name: "English again"},
	})
	assert.Error(t, err)
}
