package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errExpiryInPast = errors.New("expires_at must be in the future")

type CreateShareLinkRequest struct {
	Name      string     `json:"name,omitempty"`
	GroupTag  string     `json:"group_tag,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (req *CreateShareLinkRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(0, 100)),
		validation.Field(&req.GroupTag, validation.Length(0, 50)),
	)
	if err != nil {
		return err
	}

	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return errExpiryInPast
	}

	return nil
}

type UpdateShareLinkRequest struct {
	IsActive *bool `json:"is_active"`
}

func (req *UpdateShareLinkRequest) Validate() error {
	if req.IsActive == nil {
		return errors.New("is_active is required")
	}

	return nil
}
