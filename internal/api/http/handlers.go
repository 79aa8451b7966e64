package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sam365724/lemmy/internal/cache"
	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/entity"
	gerr "github.com/sam365724/lemmy/internal/errors"
	"github.com/sam365724/lemmy/internal/form"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type handlers struct {
	dict      *cache.LanguageCache
	site      dependency.SiteLanguages
	community dependency.CommunityLanguages
	user      dependency.UserLanguages
	actors    dependency.Actors
}

type languageIdsResponse struct {
	LanguageIds []entity.LanguageId `json:"language_ids"`
}

type idResponse struct {
	Id int `json:"id"`
}

func decodeLanguagesRequest(r *http.Request) (*form.UpdateLanguagesRequest, error) {
	var req form.UpdateLanguagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed request body")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func urlParamId(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, status.Error(codes.InvalidArgument, "malformed id")
	}
	return id, nil
}

func toLanguageIds(ids []int) []entity.LanguageId {
	out := make([]entity.LanguageId, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.LanguageId(id))
	}
	return out
}

func (h *handlers) getAllLanguages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dict.All())
}

func (h *handlers) getSiteLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.site.ReadLocalFull(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, languages)
}

func (h *handlers) updateSiteLanguages(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLanguagesRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	siteId, err := h.actors.GetLocalSiteId(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.site.Update(r.Context(), siteId, toLanguageIds(req.LanguageIds)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) getCommunityLanguages(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamId(r)
	if err != nil {
		respondError(w, err)
		return
	}

	ids, err := h.community.Read(r.Context(), entity.CommunityId(id))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, languageIdsResponse{LanguageIds: ids})
}

func (h *handlers) updateCommunityLanguages(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamId(r)
	if err != nil {
		respondError(w, err)
		return
	}

	req, err := decodeLanguagesRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.community.Update(r.Context(), entity.CommunityId(id), toLanguageIds(req.LanguageIds)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

// checkCommunityLanguage validates a post or comment language against the
// community's allowed set, by language_id or code query parameter.
func (h *handlers) checkCommunityLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamId(r)
	if err != nil {
		respondError(w, err)
		return
	}

	languageId, _ := strconv.Atoi(r.URL.Query().Get("language_id"))
	req := form.CheckLanguageRequest{
		LanguageId: languageId,
		Code:       r.URL.Query().Get("code"),
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	if req.Code != "" {
		language, ok := h.dict.GetLanguageByCode(req.Code)
		if !ok {
			respondError(w, gerr.ErrLanguageNotAllowed)
			return
		}
		req.LanguageId = int(language.Id)
	}

	if err := h.community.IsAllowed(r.Context(), entity.CommunityId(id), entity.LanguageId(req.LanguageId)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) getUserLanguages(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamId(r)
	if err != nil {
		respondError(w, err)
		return
	}

	ids, err := h.user.Read(r.Context(), entity.LocalUserId(id))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, languageIdsResponse{LanguageIds: ids})
}

func (h *handlers) updateUserLanguages(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamId(r)
	if err != nil {
		respondError(w, err)
		return
	}

	req, err := decodeLanguagesRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.user.Update(r.Context(), entity.LocalUserId(id), toLanguageIds(req.LanguageIds)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *handlers) addCommunity(w http.ResponseWriter, r *http.Request) {
	var req form.AddCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, status.Error(codes.InvalidArgument, "malformed request body"))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.actors.AddCommunity(r.Context(), entity.CommunityInsert{
		Name:  req.Name,
		Title: req.Title,
		Local: req.Local,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, idResponse{Id: int(id)})
}

func (h *handlers) addLocalUser(w http.ResponseWriter, r *http.Request) {
	var req form.AddLocalUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, status.Error(codes.InvalidArgument, "malformed request body"))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.actors.AddLocalUser(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, idResponse{Id: int(id)})
}
