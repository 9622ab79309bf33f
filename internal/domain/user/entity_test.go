//go:build unit

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		inEmail string
		wantErr error
	}{
		{name: "valid", inName: "Alice", inEmail: "alice@example.com"},
		{name: "trims whitespace", inName: "  Alice  ", inEmail: " alice@example.com "},
		{name: "empty name", inName: "", inEmail: "alice@example.com", wantErr: ErrEmptyName},
		{name: "blank name", inName: "   ", inEmail: "alice@example.com", wantErr: ErrEmptyName},
		{name: "empty email", inName: "Alice", inEmail: "", wantErr: ErrEmptyEmail},
		{name: "email without at sign", inName: "Alice", inEmail: "alice.example.com", wantErr: ErrInvalidEmail},
		{name: "email with display name", inName: "Alice", inEmail: "Alice <alice@example.com>", wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.inName, tt.inEmail)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alice", u.Name())
			assert.Equal(t, "alice@example.com", u.Email())
			assert.Zero(t, u.ID())
		})
	}
}

func TestReconstruct(t *testing.T) {
	u, err := Reconstruct(42, "Bob", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(42), u.ID())

	_, err = Reconstruct(42, "Bob", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
