package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreatePlayerRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (req *CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Color, validation.Length(0, 20)),
		validation.Field(&req.AvatarURL, is.URL),
	)
}

type UpdatePlayerRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (req *UpdatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Color, validation.Length(0, 20)),
		validation.Field(&req.AvatarURL, is.URL),
	)
}
