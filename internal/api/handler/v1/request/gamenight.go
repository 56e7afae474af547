package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	errNoResults   = errors.New("at least one result is required")
)

type CreateGameNightRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	GroupTag string `json:"group_tag,omitempty"`
}

func (req *CreateGameNightRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.GroupTag, validation.Length(0, 50)),
	)
	if err != nil {
		return err
	}

	if _, err = time.ParseInLocation(dateLayout, req.Date, time.Local); err != nil {
		return errInvalidDate
	}

	return nil
}

// ParsedDate returns the request date at local midnight. Validate must have
// passed first.
func (req *CreateGameNightRequest) ParsedDate() time.Time {
	date, _ := time.ParseInLocation(dateLayout, req.Date, time.Local)

	return date
}

type UpdateGameNightRequest struct {
	CreateGameNightRequest
}

type SessionResult struct {
	PlayerID uint `json:"player_id"`
	Position int  `json:"position"`
	Points   *int `json:"points,omitempty"`
	IsWinner bool `json:"is_winner"`
}

type RecordSessionRequest struct {
	GameName string          `json:"game_name"`
	Results  []SessionResult `json:"results"`
}

func (req *RecordSessionRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.GameName, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return err
	}

	if len(req.Results) == 0 {
		return errNoResults
	}

	// A session with no winner is fine; a lost co-op game has none.
	for _, result := range req.Results {
		if err = validation.ValidateStruct(&result,
			validation.Field(&result.PlayerID, validation.Required),
			validation.Field(&result.Position, validation.Required, validation.Min(1)),
		); err != nil {
			return err
		}
	}

	return nil
}
