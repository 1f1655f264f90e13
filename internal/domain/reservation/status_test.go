package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
)

func TestCanConfirm(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		wantErr bool
	}{
		{"pendiente se puede confirmar", StatusPending, false},
		{"confirmada no se reconfirma", StatusConfirmed, true},
		{"finalizada no se confirma", StatusFinalized, true},
		{"cancelada no se confirma", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanConfirm(tt.current)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		wantErr bool
	}{
		{"pendiente se puede cancelar", StatusPending, false},
		{"confirmada se puede cancelar", StatusConfirmed, false},
		{"finalizada no se cancela", StatusFinalized, true},
		{"cancelada no se recancela", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCancel(tt.current)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanFinalize(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		wantErr bool
	}{
		{"confirmada se puede finalizar", StatusConfirmed, false},
		{"pendiente no se finaliza sin seña", StatusPending, true},
		{"finalizada no se refinaliza", StatusFinalized, true},
		{"cancelada no se finaliza", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanFinalize(tt.current)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActiveStatuses(t *testing.T) {
	active := ActiveStatuses()

	assert.Contains(t, active, string(StatusPending))
	assert.Contains(t, active, string(StatusConfirmed))
	assert.Contains(t, active, string(StatusFinalized))
	assert.NotContains(t, active, string(StatusCancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
