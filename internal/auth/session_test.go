package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/auth"
)

func TestManager_IssueVerify(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-one", time.Hour)
	verifier := auth.NewManager("secret-two", time.Hour)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := auth.NewManager("test-secret", -time.Minute)

	token, err := m.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := m.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrInvalidSession)
	}
}

func TestManager_Cookie(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	c := m.Cookie("token-value")
	assert.Equal(t, auth.SessionCookie, c.Name)
	assert.Equal(t, "token-value", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)

	cleared := auth.ClearCookie()
	assert.Equal(t, auth.SessionCookie, cleared.Name)
	assert.Negative(t, cleared.MaxAge)
}
