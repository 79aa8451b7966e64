package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// CheckLanguageRequest asks whether a language may be used in a community,
// by catalog id or by code.
type CheckLanguageRequest struct {
	LanguageId int    `json:"language_id"`
	Code       string `json:"code"`
}

func (r *CheckLanguageRequest) Validate() error {
	if r.Code != "" {
		return ValidateStruct(r,
			v.Field(&r.Code, v.Length(2, 3)),
		)
	}
	return ValidateStruct(r,
		v.Field(&r.LanguageId, v.Required, v.Min(1)),
	)
}
