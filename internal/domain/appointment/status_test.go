package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookwell/appointments-api/internal/httperr"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{"accept pending", CanAccept, StatusPending, true},
		{"accept accepted", CanAccept, StatusAccepted, false},
		{"accept cancelled", CanAccept, StatusCancelled, false},
		{"accept finished", CanAccept, StatusFinished, false},

		{"cancel pending", CanCancel, StatusPending, true},
		{"cancel accepted", CanCancel, StatusAccepted, true},
		{"cancel cancelled", CanCancel, StatusCancelled, false},
		{"cancel finished", CanCancel, StatusFinished, false},

		{"finish accepted", CanFinish, StatusAccepted, true},
		{"finish pending", CanFinish, StatusPending, false},
		{"finish cancelled", CanFinish, StatusCancelled, false},
		{"finish finished", CanFinish, StatusFinished, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
