package store

import (
	"context"
	"fmt"

	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/entity"
	gerr "github.com/sam365724/lemmy/internal/errors"
)

// assocTable names one owner-to-language association table. The three
// tables are structurally identical, so the read and replace queries are
// shared and parameterized over it.
type assocTable struct {
	table    string
	ownerCol string
}

var (
	siteLanguageTable      = assocTable{table: "site_language", ownerCol: "site_id"}
	communityLanguageTable = assocTable{table: "community_language", ownerCol: "community_id"}
	localUserLanguageTable = assocTable{table: "local_user_language", ownerCol: "local_user_id"}
)

// resolveLanguageIds interprets the empty selection convention: no
// languages requested means every catalog language. Non-empty input passes
// through unvalidated, bad ids surface as foreign key violations on insert.
func resolveLanguageIds(ctx context.Context, rep dependency.Repository, languageIds []entity.LanguageId) ([]entity.LanguageId, error) {
	if len(languageIds) > 0 {
		return languageIds, nil
	}
	return rep.Languages().GetAllLanguageIds(ctx)
}

// readLanguages returns the owner's current association set, ordered by
// language id for deterministic reads.
func readLanguages[O ~int](ctx context.Context, conn dependency.DB, at assocTable, ownerId O) ([]entity.LanguageId, error) {
	query := fmt.Sprintf(`SELECT language_id FROM %s WHERE %s = ? ORDER BY language_id`, at.table, at.ownerCol)

	var ids []entity.LanguageId
	if err := conn.SelectContext(ctx, &ids, query, int(ownerId)); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", at.table, err)
	}
	return ids, nil
}

// replaceLanguages deletes the owner's current association rows and inserts
// one row per language id. languageIds must already be resolved and
// non-empty. Callers are responsible for running this inside a transaction.
func replaceLanguages[O ~int](ctx context.Context, rep dependency.Repository, at assocTable, ownerId O, languageIds []entity.LanguageId) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = :ownerId`, at.table, at.ownerCol)
	if err := ExecNamed(ctx, rep.DB(), query, map[string]any{
		"ownerId": int(ownerId),
	}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", at.table, err)
	}

	rows := make([]map[string]any, 0, len(languageIds))
	for _, id := range languageIds {
		rows = append(rows, map[string]any{
			at.ownerCol:   int(ownerId),
			"language_id": int(id),
		})
	}
	if err := BulkInsert(ctx, rep.DB(), at.table, rows); err != nil {
		return fmt.Errorf("failed to insert %s: %w", at.table, err)
	}
	return nil
}

// limitCommunityLanguages deletes from every local community any language
// that is not part of the given site set. Post and comment languages are
// only checked against community languages, so a language outside the site
// set must not survive on a local community. Narrowing only: a community
// emptied here stays empty until explicitly updated.
func limitCommunityLanguages(ctx context.Context, rep dependency.Repository, siteLanguageIds []entity.LanguageId) error {
	communityIds, err := rep.Actors().ListLocalCommunityIds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local communities: %w", err)
	}

	for _, communityId := range communityIds {
		err := ExecNamed(ctx, rep.DB(),
			`DELETE FROM community_language WHERE community_id = :communityId AND language_id NOT IN (:languageIds)`,
			map[string]any{
				"communityId": int(communityId),
				"languageIds": languageIdsToInts(siteLanguageIds),
			})
		if err != nil {
			return fmt.Errorf("failed to limit languages of community %d: %w", communityId, err)
		}
	}
	return nil
}

func languageIdsToInts(ids []entity.LanguageId) []int {
	ints := make([]int, 0, len(ids))
	for _, id := range ids {
		ints = append(ints, int(id))
	}
	return ints
}

type siteLanguageStore struct {
	*MYSQLStore
}

// SiteLanguages returns an object implementing the site languages interface
func (ms *MYSQLStore) SiteLanguages() dependency.SiteLanguages {
	return &siteLanguageStore{
		MYSQLStore: ms,
	}
}

func (s *siteLanguageStore) Read(ctx context.Context, siteId entity.SiteId) ([]entity.LanguageId, error) {
	return readLanguages(ctx, s.DB(), siteLanguageTable, siteId)
}

func (s *siteLanguageStore) ReadLocal(ctx context.Context) ([]entity.LanguageId, error) {
	siteId, err := s.Actors().GetLocalSiteId(ctx)
	if err != nil {
		return nil, err
	}
	return s.Read(ctx, siteId)
}

// ReadLocalFull returns full catalog rows for the local site's set.
func (s *siteLanguageStore) ReadLocalFull(ctx context.Context) ([]entity.Language, error) {
	siteId, err := s.Actors().GetLocalSiteId(ctx)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT l.id, l.code, l.name
	FROM language AS l
	INNER JOIN site_language AS sl ON sl.language_id = l.id
	WHERE sl.site_id = :siteId
	ORDER BY l.id`

	languages, err := QueryListNamed[entity.Language](ctx, s.DB(), query, map[string]any{
		"siteId": int(siteId),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read site languages: %w", err)
	}
	return languages, nil
}

// Update replaces the site's language set and narrows every local
// community to the new set in the same transaction. An empty languageIds
// means all languages.
func (s *siteLanguageStore) Update(ctx context.Context, siteId entity.SiteId, languageIds []entity.LanguageId) error {
	return s.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		resolved, err := resolveLanguageIds(ctx, rep, languageIds)
		if err != nil {
			return err
		}
		if err := replaceLanguages(ctx, rep, siteLanguageTable, siteId, resolved); err != nil {
			return err
		}
		return limitCommunityLanguages(ctx, rep, resolved)
	})
}

type communityLanguageStore struct {
	*MYSQLStore
}

// CommunityLanguages returns an object implementing the community languages interface
func (ms *MYSQLStore) CommunityLanguages() dependency.CommunityLanguages {
	return &communityLanguageStore{
		MYSQLStore: ms,
	}
}

func (s *communityLanguageStore) Read(ctx context.Context, communityId entity.CommunityId) ([]entity.LanguageId, error) {
	return readLanguages(ctx, s.DB(), communityLanguageTable, communityId)
}

// Update replaces the community's language set. An empty languageIds means
// all languages. No subset check against the site set is made here, remote
// communities may carry languages the local site does not allow.
func (s *communityLanguageStore) Update(ctx context.Context, communityId entity.CommunityId, languageIds []entity.LanguageId) error {
	return s.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		resolved, err := resolveLanguageIds(ctx, rep, languageIds)
		if err != nil {
			return err
		}
		return replaceLanguages(ctx, rep, communityLanguageTable, communityId, resolved)
	})
}

// IsAllowed returns nil if the given language is one of the configured
// languages of the community, gerr.ErrLanguageNotAllowed otherwise.
func (s *communityLanguageStore) IsAllowed(ctx context.Context, communityId entity.CommunityId, languageId entity.LanguageId) error {
	count, err := QueryCountNamed(ctx, s.DB(),
		`SELECT COUNT(*) FROM community_language WHERE community_id = :communityId AND language_id = :languageId`,
		map[string]any{
			"communityId": int(communityId),
			"languageId":  int(languageId),
		})
	if err != nil {
		return fmt.Errorf("failed to check community language: %w", err)
	}
	if count == 0 {
		return gerr.ErrLanguageNotAllowed
	}
	return nil
}

type userLanguageStore struct {
	*MYSQLStore
}

// UserLanguages returns an object implementing the user languages interface
func (ms *MYSQLStore) UserLanguages() dependency.UserLanguages {
	return &userLanguageStore{
		MYSQLStore: ms,
	}
}

func (s *userLanguageStore) Read(ctx context.Context, localUserId entity.LocalUserId) ([]entity.LanguageId, error) {
	return readLanguages(ctx, s.DB(), localUserLanguageTable, localUserId)
}

// Update replaces the user's language set. An empty languageIds means all
// languages. The user's set is independent of site and community sets.
func (s *userLanguageStore) Update(ctx context.Context, localUserId entity.LocalUserId, languageIds []entity.LanguageId) error {
	return s.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		resolved, err := resolveLanguageIds(ctx, rep, languageIds)
		if err != nil {
			return err
		}
		return replaceLanguages(ctx, rep, localUserLanguageTable, localUserId, resolved)
	})
}
