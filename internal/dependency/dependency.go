package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sam365724/lemmy/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Languages is the read-only language catalog.
	Languages interface {
		GetAllLanguages(ctx context.Context) ([]entity.Language, error)
		GetAllLanguageIds(ctx context.Context) ([]entity.LanguageId, error)
		GetLanguageByCode(ctx context.Context, code string) (*entity.Language, error)
	}

	// SiteLanguages manages the set of languages allowed on a site.
	SiteLanguages interface {
		Read(ctx context.Context, siteId entity.SiteId) ([]entity.LanguageId, error)
		// ReadLocal reads the language set of the local site.
		ReadLocal(ctx context.Context) ([]entity.LanguageId, error)
		// ReadLocalFull returns full catalog rows for the local site's set.
		ReadLocalFull(ctx context.Context) ([]entity.Language, error)
		// Update replaces the site's language set. An empty languageIds
		// means all languages. Local communities are narrowed to the new
		// set within the same transaction.
		Update(ctx context.Context, siteId entity.SiteId, languageIds []entity.LanguageId) error
	}

	// CommunityLanguages manages the set of languages allowed in a community.
	CommunityLanguages interface {
		Read(ctx context.Context, communityId entity.CommunityId) ([]entity.LanguageId, error)
		// Update replaces the community's language set. An empty
		// languageIds means all languages.
		Update(ctx context.Context, communityId entity.CommunityId, languageIds []entity.LanguageId) error
		// IsAllowed returns nil if the language is allowed in the
		// community, gerr.ErrLanguageNotAllowed otherwise.
		IsAllowed(ctx context.Context, communityId entity.CommunityId, languageId entity.LanguageId) error
	}

	// UserLanguages manages the languages selected by a local user.
	UserLanguages interface {
		Read(ctx context.Context, localUserId entity.LocalUserId) ([]entity.LanguageId, error)
		Update(ctx context.Context, localUserId entity.LocalUserId, languageIds []entity.LanguageId) error
	}

	// Actors provides the owner entities language sets hang off of. New
	// communities and local users are seeded with the current site set.
	Actors interface {
		GetLocalSiteId(ctx context.Context) (entity.SiteId, error)
		ListLocalCommunityIds(ctx context.Context) ([]entity.CommunityId, error)
		AddSite(ctx context.Context, name string) (entity.SiteId, error)
		AddCommunity(ctx context.Context, community entity.CommunityInsert) (entity.CommunityId, error)
		AddLocalUser(ctx context.Context, name string) (entity.LocalUserId, error)
	}

	Repository interface {
		Languages() Languages
		SiteLanguages() SiteLanguages
		CommunityLanguages() CommunityLanguages
		UserLanguages() UserLanguages
		Actors() Actors
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
