package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateLanguagesRequest carries the requested language set for a site,
// community or user update. An empty list means all languages.
type UpdateLanguagesRequest struct {
	LanguageIds []int `json:"language_ids"`
}

func (r *UpdateLanguagesRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.LanguageIds, v.Each(v.Min(1))),
	)
}
