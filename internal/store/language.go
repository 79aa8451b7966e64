package store

import (
	"context"
	"fmt"

	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/entity"
)

type languageStore struct {
	*MYSQLStore
}

// Languages returns an object implementing the language catalog interface
func (ms *MYSQLStore) Languages() dependency.Languages {
	return &languageStore{
		MYSQLStore: ms,
	}
}

// GetAllLanguages returns every row of the language catalog
func (ls *languageStore) GetAllLanguages(ctx context.Context) ([]entity.Language, error) {
	query := `SELECT id, code, name FROM language ORDER BY id`

	var languages []entity.Language
	err := ls.db.SelectContext(ctx, &languages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get languages: %w", err)
	}

	return languages, nil
}

// GetAllLanguageIds returns the id of every catalog language
func (ls *languageStore) GetAllLanguageIds(ctx context.Context) ([]entity.LanguageId, error) {
	query := `SELECT id FROM language ORDER BY id`

	var ids []entity.LanguageId
	err := ls.db.SelectContext(ctx, &ids, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get language ids: %w", err)
	}

	return ids, nil
}

// GetLanguageByCode returns a language by its code
func (ls *languageStore) GetLanguageByCode(ctx context.Context, code string) (*entity.Language, error) {
	query := `SELECT id, code, name FROM language WHERE code = ?`

	var language entity.Language
	err := ls.db.GetContext(ctx, &language, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get language by code %s: %w", code, err)
	}

	return &language, nil
}
