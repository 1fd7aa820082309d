package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityStub(t *testing.T, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestRemoteSignUpCreatesLocalRow(t *testing.T) {
	srv := identityStub(t, http.StatusCreated)
	viper.Set("auth.remote.url", srv.URL)

	s := newTestStore(t)
	r := NewRemote(s)

	user, err := r.SignUp("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	// Ownership scoping needs the local row
	_, err = s.FindUserByEmail("a@b.com")
	assert.NoError(t, err)
}

func TestRemoteAuthenticateRejected(t *testing.T) {
	srv := identityStub(t, http.StatusUnauthorized)
	viper.Set("auth.remote.url", srv.URL)

	r := NewRemote(newTestStore(t))

	_, err := r.Authenticate("a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRemoteSignUpConflict(t *testing.T) {
	srv := identityStub(t, http.StatusConflict)
	viper.Set("auth.remote.url", srv.URL)

	r := NewRemote(newTestStore(t))

	_, err := r.SignUp("a@b.com", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRemoteAuthenticateBackfillsLocalRow(t *testing.T) {
	srv := identityStub(t, http.StatusOK)
	viper.Set("auth.remote.url", srv.URL)

	s := newTestStore(t)
	r := NewRemote(s)

	// No SignUp through this backend, the identity predates it
	user, err := r.Authenticate("old@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "old@b.com", user.Email)

	again, err := r.Authenticate("old@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestRemoteUpstreamFailure(t *testing.T) {
	srv := identityStub(t, http.StatusInternalServerError)
	viper.Set("auth.remote.url", srv.URL)

	r := NewRemote(newTestStore(t))

	_, err := r.Authenticate("a@b.com", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
