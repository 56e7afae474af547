package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameNightRequest_Validate(t *testing.T) {
	req := CreateGameNightRequest{Name: "Friday Classics", Date: "2026-03-14"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), req.ParsedDate())

	req = CreateGameNightRequest{Name: "Friday Classics", Date: "14/03/2026"}
	assert.ErrorIs(t, req.Validate(), errInvalidDate)

	req = CreateGameNightRequest{Date: "2026-03-14"}
	assert.Error(t, req.Validate())
}

func TestRecordSessionRequest_Validate(t *testing.T) {
	req := RecordSessionRequest{
		GameName: "Catan",
		Results: []SessionResult{
			{PlayerID: 1, Position: 1, IsWinner: true},
			{PlayerID: 2, Position: 2},
		},
	}
	assert.NoError(t, req.Validate())

	req.Results = nil
	assert.ErrorIs(t, req.Validate(), errNoResults)
}

func TestRecordSessionRequest_Validate_AllowsNoWinner(t *testing.T) {
	// A co-op game everyone lost still records as a session.
	req := RecordSessionRequest{
		GameName: "Pandemic",
		Results: []SessionResult{
			{PlayerID: 1, Position: 1},
			{PlayerID: 2, Position: 2},
		},
	}

	assert.NoError(t, req.Validate())
}

func TestRecordSessionRequest_Validate_RejectsBadResults(t *testing.T) {
	req := RecordSessionRequest{
		GameName: "Catan",
		Results:  []SessionResult{{Position: 1, IsWinner: true}},
	}
	assert.Error(t, req.Validate())

	req.Results = []SessionResult{{PlayerID: 1, Position: 0, IsWinner: true}}
	assert.Error(t, req.Validate())
}
