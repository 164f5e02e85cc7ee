package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:        uuid.New(),
		Firstname: "Nora",
		Lastname:  "Keita",
		Email:     "nora@example.com",
		Role:      model.RoleDriver,
	}
}

func TestIssueAndParse(t *testing.T) {
	user := testUser()
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := parser.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Nora Keita", claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleDriver, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	parser := NewParser("secret-b")

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	parser := NewParser("test-secret")

	_, err := parser.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
