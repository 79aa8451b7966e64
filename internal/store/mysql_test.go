package store

import (
	"context"
	"os"
	"testing"

	"github.com/sam365724/lemmy/internal/entity"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	require.NoError(t, err)
	for _, table := range []string{
		"site_language",
		"community_language",
		"local_user_language",
		"local_user",
		"community",
		"site",
	} {
		_, err = db.db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	require.NoError(t, err)

	return db
}

// langIdsByCode resolves catalog ids for the given codes.
func langIdsByCode(t *testing.T, db *MYSQLStore, codes ...string) []entity.LanguageId {
	t.Helper()
	ctx := context.Background()

	ids := make([]entity.LanguageId, 0, len(codes))
	for _, code := range codes {
		l, err := db.Languages().GetLanguageByCode(ctx, code)
		require.NoError(t, err)
		ids = append(ids, l.Id)
	}
	return ids
}

func TestMigrationsSeedCatalog(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	languages, err := db.Languages().GetAllLanguages(context.Background())
	require.NoError(t, err)
	require.Len(t, languages, 184)
	require.Equal(t, "und", languages[0].Code)
}
