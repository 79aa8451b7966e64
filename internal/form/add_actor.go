package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
)

type AddCommunityRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Local bool   `json:"local"`
}

func (r *AddCommunityRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Name, v.Required, v.Length(1, 255)),
		v.Field(&r.Title, v.Required, v.Length(1, 255)),
	)
}

type AddLocalUserRequest struct {
	Name string `json:"name"`
}

func (r *AddLocalUserRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Name, v.Required, v.Length(1, 255)),
	)
}
