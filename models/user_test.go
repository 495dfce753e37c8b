package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONRoundTrip(t *testing.T) {
	created := time.Date(2024, 9, 26, 14, 2, 25, 987654321, time.UTC)
	user := User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "$2a$04$hash",
		CreatedAt: NewTimestamp(created),
		UpdatedAt: NewTimestamp(created.Add(time.Microsecond)),
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, user.ID, decoded.ID)
	assert.Equal(t, user.Username, decoded.Username)
	assert.Equal(t, user.Email, decoded.Email)
	assert.Equal(t, user.Password, decoded.Password)
	assert.True(t, user.CreatedAt.Equal(decoded.CreatedAt.Time))
	assert.True(t, user.UpdatedAt.Equal(decoded.UpdatedAt.Time))
}

func TestUser_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(User{ID: uuid.Nil})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, name := range []string{"id", "username", "email", "password", "created_at", "updated_at"} {
		assert.Contains(t, fields, name)
	}
}

func TestUser_PublicDropsPassword(t *testing.T) {
	user := User{ID: uuid.New(), Username: "bob", Email: "b@x.com", Password: "secret-hash"}

	data, err := json.Marshal(user.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "secret-hash")
}

func TestPublicUsers_EmptyIsNotNil(t *testing.T) {
	got := PublicUsers(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUserPatch_OmitsImmutableFields(t *testing.T) {
	data, err := json.Marshal(UserPatch{Username: "alice2"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"id"`)
	assert.NotContains(t, string(data), "created_at")
	assert.Contains(t, string(data), "updated_at")
}
