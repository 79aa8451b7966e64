package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/entity"
	gerr "github.com/sam365724/lemmy/internal/errors"
)

type actorsStore struct {
	*MYSQLStore
}

// Actors returns an object implementing the actors interface
func (ms *MYSQLStore) Actors() dependency.Actors {
	return &actorsStore{
		MYSQLStore: ms,
	}
}

// GetLocalSiteId returns the id of the local site. The first site row is
// the local one, later rows are federated peers.
func (as *actorsStore) GetLocalSiteId(ctx context.Context) (entity.SiteId, error) {
	var id entity.SiteId
	err := as.db.GetContext(ctx, &id, `SELECT id FROM site ORDER BY id LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, gerr.ErrSiteNotFound
		}
		return 0, fmt.Errorf("failed to get local site id: %w", err)
	}
	return id, nil
}

func (as *actorsStore) ListLocalCommunityIds(ctx context.Context) ([]entity.CommunityId, error) {
	var ids []entity.CommunityId
	err := as.db.SelectContext(ctx, &ids, `SELECT id FROM community WHERE local = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list local communities: %w", err)
	}
	return ids, nil
}

// AddSite creates a site allowing every catalog language.
func (as *actorsStore) AddSite(ctx context.Context, name string) (entity.SiteId, error) {
	var siteId entity.SiteId
	err := as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		id, err := ExecNamedLastId(ctx, rep.DB(), `INSERT INTO site (name) VALUES (:name)`, map[string]any{
			"name": name,
		})
		if err != nil {
			return fmt.Errorf("failed to insert site: %w", err)
		}
		siteId = entity.SiteId(id)

		languageIds, err := rep.Languages().GetAllLanguageIds(ctx)
		if err != nil {
			return err
		}
		return replaceLanguages(ctx, rep, siteLanguageTable, siteId, languageIds)
	})
	if err != nil {
		return 0, err
	}
	return siteId, nil
}

// AddCommunity creates a community. Local communities start out with the
// current site language set, remote ones stay empty until federation
// delivers their set.
func (as *actorsStore) AddCommunity(ctx context.Context, community entity.CommunityInsert) (entity.CommunityId, error) {
	var communityId entity.CommunityId
	err := as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		id, err := ExecNamedLastId(ctx, rep.DB(),
			`INSERT INTO community (name, title, local) VALUES (:name, :title, :local)`,
			map[string]any{
				"name":  community.Name,
				"title": community.Title,
				"local": community.Local,
			})
		if err != nil {
			return fmt.Errorf("failed to insert community: %w", err)
		}
		communityId = entity.CommunityId(id)

		if !community.Local {
			return nil
		}
		languageIds, err := rep.SiteLanguages().ReadLocal(ctx)
		if err != nil {
			return err
		}
		return replaceLanguages(ctx, rep, communityLanguageTable, communityId, languageIds)
	})
	if err != nil {
		return 0, err
	}
	return communityId, nil
}

// AddLocalUser creates a local user with the current site language set.
func (as *actorsStore) AddLocalUser(ctx context.Context, name string) (entity.LocalUserId, error) {
	var localUserId entity.LocalUserId
	err := as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		id, err := ExecNamedLastId(ctx, rep.DB(), `INSERT INTO local_user (name) VALUES (:name)`, map[string]any{
			"name": name,
		})
		if err != nil {
			return fmt.Errorf("failed to insert local user: %w", err)
		}
		localUserId = entity.LocalUserId(id)

		languageIds, err := rep.SiteLanguages().ReadLocal(ctx)
		if err != nil {
			return err
		}
		return replaceLanguages(ctx, rep, localUserLanguageTable, localUserId, languageIds)
	})
	if err != nil {
		return 0, err
	}
	return localUserId, nil
}
