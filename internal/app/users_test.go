package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/domain"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.users.Register(Credentials{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.User.Username)

	login, err := env.users.Login(Credentials{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(Credentials{Username: "alice", Email: "a@b.c", Password: "pw123456"})
	require.NoError(t, err)

	_, err = env.users.Register(Credentials{Username: "alice2", Email: "a@b.c", Password: "pw123456"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(Credentials{Username: "x"})
	require.Error(t, err)
	assert.Equal(t, 400, apperr.From(err).StatusCode)
}

func TestLogin_SameMessageForUnknownUserAndBadPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(Credentials{Username: "bob", Email: "bob@b.c", Password: "pw123456"})
	require.NoError(t, err)

	_, unknownErr := env.users.Login(Credentials{Email: "nobody@b.c", Password: "pw123456"})
	_, badPassErr := env.users.Login(Credentials{Email: "bob@b.c", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, badPassErr)
	assert.Equal(t, apperr.From(unknownErr).Message, apperr.From(badPassErr).Message)
	assert.Equal(t, 401, apperr.From(unknownErr).StatusCode)
	assert.Equal(t, 401, apperr.From(badPassErr).StatusCode)
}

func TestUpdateFavorites(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.users.Register(Credentials{Username: "carol", Email: "c@b.c", Password: "pw123456"})
	require.NoError(t, err)

	user, err := env.users.UpdateFavorites(session.User.ID, domain.StringSlice{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, domain.StringSlice{"s1", "s2"}, user.FavoriteSongIDs)

	// Replacing with nil clears the list instead of storing null.
	user, err = env.users.UpdateFavorites(session.User.ID, nil)
	require.NoError(t, err)
	assert.NotNil(t, user.FavoriteSongIDs)
	assert.Empty(t, user.FavoriteSongIDs)
}

func TestUpdateFavorites_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.UpdateFavorites("ghost", domain.StringSlice{"s1"})
	assert.True(t, apperr.IsNotFound(err))
}
