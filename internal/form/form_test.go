package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUpdateLanguagesRequest(t *testing.T) {
	// empty set is valid, it means all languages
	req := UpdateLanguagesRequest{}
	assert.NoError(t, req.Validate())

	req = UpdateLanguagesRequest{LanguageIds: []int{1, 37, 184}}
	assert.NoError(t, req.Validate())

	req = UpdateLanguagesRequest{LanguageIds: []int{1, 0}}
	err := req.Validate()
	assert.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCheckLanguageRequest(t *testing.T) {
	req := CheckLanguageRequest{LanguageId: 5}
	assert.NoError(t, req.Validate())

	req = CheckLanguageRequest{Code: "en"}
	assert.NoError(t, req.Validate())

	req = CheckLanguageRequest{}
	assert.Error(t, req.Validate())

	req = CheckLanguageRequest{Code: "x"}
	assert.Error(t, req.Validate())
}

func TestAddCommunityRequest(t *testing.T) {
	req := AddCommunityRequest{Name: "books", Title: "Books", Local: true}
	assert.NoError(t, req.Validate())

	req = AddCommunityRequest{Title: "Books"}
	assert.Error(t, req.Validate())
}
