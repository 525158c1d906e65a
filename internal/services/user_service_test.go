package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarlabs/bazaar-be/internal/testutil"
)

func TestUserServiceRegister(t *testing.T) {
	db := testutil.OpenTestDB(t, "usersvc_register")
	svc := NewUserService(db)

	user, err := svc.Register("alice", "pw123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	// Same username registers exactly once.
	_, err = svc.Register("alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceAuthenticate(t *testing.T) {
	db := testutil.OpenTestDB(t, "usersvc_auth")
	svc := NewUserService(db)

	registered, err := svc.Register("alice", "pw123")
	require.NoError(t, err)

	user, err := svc.Authenticate("alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	// Wrong password and unknown username fail identically.
	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserServiceGetUserByID(t *testing.T) {
	db := testutil.OpenTestDB(t, "usersvc_get")
	svc := NewUserService(db)

	user, err := svc.Register("bob", "hunter2")
	require.NoError(t, err)

	got, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	_, err = svc.GetUserByID(user.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceGetAllUsers(t *testing.T) {
	db := testutil.OpenTestDB(t, "usersvc_list")
	svc := NewUserService(db)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Register("alice", "pw")
	require.NoError(t, err)
	_, err = svc.Register("bob", "pw")
	require.NoError(t, err)

	users, err = svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
