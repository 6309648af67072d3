package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "starter", input: "starter", want: StatusStarter},
		{name: "substitute", input: "substitute", want: StatusSubstitute},
		{name: "mixed case and padding", input: "  Substitute ", want: StatusSubstitute},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "benched", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlayerInput(t *testing.T) {
	tests := []struct {
		name      string
		fields    [4]string
		wantField string
	}{
		{name: "valid", fields: [4]string{" Ana ", "23", " Forward ", "starter"}},
		{name: "blank name", fields: [4]string{"  ", "23", "Forward", "starter"}, wantField: "name"},
		{name: "missing age", fields: [4]string{"Ana", "", "Forward", "starter"}, wantField: "age"},
		{name: "non numeric age", fields: [4]string{"Ana", "abc", "Forward", "starter"}, wantField: "age"},
		{name: "zero age", fields: [4]string{"Ana", "0", "Forward", "starter"}, wantField: "age"},
		{name: "negative age", fields: [4]string{"Ana", "-4", "Forward", "starter"}, wantField: "age"},
		{name: "blank position", fields: [4]string{"Ana", "23", "", "starter"}, wantField: "position"},
		{name: "bad status", fields: [4]string{"Ana", "23", "Forward", "injured"}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlayerInput(tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3])
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, Player{Name: "Ana", Age: 23, Position: "Forward", Status: StatusStarter}, p)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{Name: "Ana", Age: 23, Position: "Forward", Status: StatusSubstitute}
	assert.NoError(t, valid.Validate())

	noStatus := valid
	noStatus.Status = ""
	assert.ErrorIs(t, noStatus.Validate(), ErrValidation)

	badStatus := valid
	badStatus.Status = "titular"
	assert.ErrorIs(t, badStatus.Validate(), ErrValidation)
}

func TestPlayerHasName(t *testing.T) {
	p := Player{Name: "Ana Lopez"}
	assert.True(t, p.HasName("ana lopez"))
	assert.True(t, p.HasName("  ANA LOPEZ "))
	assert.False(t, p.HasName("ana"))

	keeper := Player{Name: "Weiß"}
	assert.True(t, keeper.HasName("WEISS"))
	assert.True(t, Player{Name: "José"}.HasName("JOSÉ"))
}

func TestSwapErrorUnwraps(t *testing.T) {
	err := &SwapError{Reason: "players have the same status"}
	assert.ErrorIs(t, err, ErrInvalidSwap)
	assert.Contains(t, err.Error(), "same status")
}
