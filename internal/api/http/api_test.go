package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sam365724/lemmy/internal/cache"
	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/entity"
	gerr "github.com/sam365724/lemmy/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSiteLanguages struct {
	languages []entity.Language
	updated   []entity.LanguageId
}

func (s *stubSiteLanguages) Read(ctx context.Context, siteId entity.SiteId) ([]entity.LanguageId, error) {
	return nil, nil
}

func (s *stubSiteLanguages) ReadLocal(ctx context.Context) ([]entity.LanguageId, error) {
	ids := make([]entity.LanguageId, 0, len(s.languages))
	for _, l := range s.languages {
		ids = append(ids, l.Id)
	}
	return ids, nil
}

func (s *stubSiteLanguages) ReadLocalFull(ctx context.Context) ([]entity.Language, error) {
	return s.languages, nil
}

func (s *stubSiteLanguages) Update(ctx context.Context, siteId entity.SiteId, languageIds []entity.LanguageId) error {
	s.updated = languageIds
	return nil
}

type stubCommunityLanguages struct {
	allowed map[entity.LanguageId]bool
}

func (s *stubCommunityLanguages) Read(ctx context.Context, communityId entity.CommunityId) ([]entity.LanguageId, error) {
	ids := make([]entity.LanguageId, 0, len(s.allowed))
	for id := range s.allowed {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *stubCommunityLanguages) Update(ctx context.Context, communityId entity.CommunityId, languageIds []entity.LanguageId) error {
	return nil
}

func (s *stubCommunityLanguages) IsAllowed(ctx context.Context, communityId entity.CommunityId, languageId entity.LanguageId) error {
	if s.allowed[languageId] {
		return nil
	}
	return gerr.ErrLanguageNotAllowed
}

type stubActors struct {
	dependency.Actors
}

func (s *stubActors) GetLocalSiteId(ctx context.Context) (entity.SiteId, error) {
	return 1, nil
}

type stubRepository struct {
	dependency.Repository
	site      *stubSiteLanguages
	community *stubCommunityLanguages
}

func (s *stubRepository) SiteLanguages() dependency.SiteLanguages           { return s.site }
func (s *stubRepository) CommunityLanguages() dependency.CommunityLanguages { return s.community }
func (s *stubRepository) UserLanguages() dependency.UserLanguages           { return nil }
func (s *stubRepository) Actors() dependency.Actors                         { return &stubActors{} }

func newTestServer(t *testing.T) (*httptest.Server, *stubRepository) {
	languages := []entity.Language{
		{Id: 1, Code: "und", Name: "Undetermined"},
		{Id: 2, Code: "en", Name: "English"},
		{Id: 3, Code: "fi", Name: "Finnish"},
	}
	dict, err := cache.NewLanguageCache(languages)
	require.NoError(t, err)

	rep := &stubRepository{
		site: &stubSiteLanguages{languages: languages},
		community: &stubCommunityLanguages{
			allowed: map[entity.LanguageId]bool{2: true},
		},
	}

	s := New(&Config{})
	ts := httptest.NewServer(s.router(rep, dict))
	t.Cleanup(ts.Close)
	return ts, rep
}

func TestGetSiteLanguages(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/site/languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateSiteLanguages(t *testing.T) {
	ts, rep := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/site/languages",
		strings.NewReader(`{"language_ids": [2, 3]}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []entity.LanguageId{2, 3}, rep.site.updated)
}

func TestUpdateSiteLanguagesBadBody(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/site/languages",
		strings.NewReader(`{"language_ids": "en"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckCommunityLanguage(t *testing.T) {
	ts, _ := newTestServer(t)

	for path, wantCode := range map[string]int{
		"/api/community/5/languages/check?language_id=2": http.StatusOK,
		"/api/community/5/languages/check?code=en":       http.StatusOK,
		"/api/community/5/languages/check?language_id=3": http.StatusBadRequest,
		"/api/community/5/languages/check?code=xx":       http.StatusBadRequest,
		"/api/community/5/languages/check":               http.StatusBadRequest,
		"/api/community/abc/languages/check?code=en":     http.StatusBadRequest,
	} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, wantCode, resp.StatusCode, path)
	}
}
