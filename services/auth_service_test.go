package services

import (
	"testing"

	"eduboard/kvstore"
	"eduboard/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(kv kvstore.Store) *AuthService {
	return NewAuthService(kv, "test-secret", 0)
}

func TestSignupPersistsSession(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	svc := newTestAuthService(kv)

	user, err := svc.Signup("Jane", "jane@x.com", "pw", models.RoleStudent, models.Class7th)
	assert.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, models.Class7th, user.Class)

	// A fresh service over the same store sees the session
	reloaded := newTestAuthService(kv)
	current := reloaded.Current()
	if assert.NotNil(t, current) {
		assert.Equal(t, "Jane", current.Name)
		assert.Equal(t, models.RoleStudent, current.Role)
		assert.Equal(t, models.Class7th, current.Class)
	}
	assert.True(t, reloaded.IsAuthenticated())
}

func TestLoginDerivesUserFromEmail(t *testing.T) {
	svc := newTestAuthService(kvstore.NewMemoryStore())

	student, err := svc.Login("bob@example.com", "pw", models.RoleStudent)
	assert.NoError(t, err)
	assert.Equal(t, "bob", student.Name)
	assert.Equal(t, models.Class6th, student.Class) // default for students

	teacher, err := svc.Login("ada@example.com", "pw", models.RoleTeacher)
	assert.NoError(t, err)
	assert.Empty(t, teacher.Class)

	// The second login replaced the session wholesale
	current := svc.Current()
	if assert.NotNil(t, current) {
		assert.Equal(t, teacher.ID, current.ID)
	}
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(kvstore.NewMemoryStore())

	_, err := svc.Login("", "pw", models.RoleStudent)
	assert.Error(t, err)
	_, err = svc.Login("a@b.c", "", models.RoleStudent)
	assert.Error(t, err)
	_, err = svc.Login("a@b.c", "pw", "admin")
	assert.ErrorIs(t, err, models.ErrInvalidRole)
	_, err = svc.Signup("Jane", "jane@x.com", "pw", models.RoleStudent, "13th")
	assert.Error(t, err)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestAuthService(kvstore.NewMemoryStore())

	_, err := svc.Login("bob@example.com", "pw", models.RoleStudent)
	assert.NoError(t, err)
	assert.True(t, svc.IsAuthenticated())

	assert.NoError(t, svc.Logout())
	assert.Nil(t, svc.Current())
	assert.False(t, svc.IsAuthenticated())

	// Logging out with no session is a no-op
	assert.NoError(t, svc.Logout())
}

func TestPasswordIsStoredHashed(t *testing.T) {
	svc := newTestAuthService(kvstore.NewMemoryStore())

	_, err := svc.Signup("Jane", "jane@x.com", "hunter2", models.RoleTeacher, "")
	assert.NoError(t, err)

	current := svc.Current()
	if assert.NotNil(t, current) {
		assert.NotEqual(t, "hunter2", current.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte("hunter2")))
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(kvstore.NewMemoryStore())

	user, err := svc.Signup("Jane", "jane@x.com", "pw", models.RoleStudent, models.Class9th)
	assert.NoError(t, err)

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := VerifyAuthToken(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, models.Class9th, claims.Class)

	_, err = VerifyAuthToken(token, "wrong-secret")
	assert.Error(t, err)
}
