package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserDefaults(t *testing.T) {
	t.Parallel()

	user, err := CreateUser("reporter", "reporter@example.com", "s3cret-pass", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "reporter", user.FullName, "full name should default to the username")
	assert.Equal(t, ROLE_AUTHOR, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")
}

func TestCreateUserValidation(t *testing.T) {
	t.Parallel()

	_, err := CreateUser("ed", "not-an-email", "s3cret-pass", "", "")
	assert.Error(t, err)

	_, err = CreateUser("editor", "editor@example.com", "s3cret-pass", "", "superuser")
	assert.Error(t, err, "unknown roles are rejected")
}

func TestPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	user, err := CreateUser("chief", "chief@example.com", "hunter22", "Chief Editor", ROLE_EDITOR)
	assert.NoError(t, err)

	assert.True(t, user.CheckPassword("hunter22"))
	assert.False(t, user.CheckPassword("hunter23"))

	assert.NoError(t, user.SetPassword("new-password"))
	assert.True(t, user.CheckPassword("new-password"))
	assert.False(t, user.CheckPassword("hunter22"))
}

func TestIsStaff(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Role: ROLE_ADMIN}).IsStaff())
	assert.True(t, (&User{Role: ROLE_EDITOR}).IsStaff())
	assert.False(t, (&User{Role: ROLE_AUTHOR}).IsStaff())
}
