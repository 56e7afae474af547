package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCommentRequest struct {
	Content       string `json:"content"`
	GameSessionID *uint  `json:"game_session_id,omitempty"`
}

func (req *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 2000)),
	)
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (req *UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 2000)),
	)
}

// CreateVisitorCommentRequest is the only write a share-link visitor can
// make. DisplayName is free-text attribution, not an identity.
type CreateVisitorCommentRequest struct {
	Content     string `json:"content"`
	DisplayName string `json:"display_name,omitempty"`
}

func (req *CreateVisitorCommentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 2000)),
		validation.Field(&req.DisplayName, validation.Length(0, 50)),
	)
}
