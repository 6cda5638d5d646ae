package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angdmz/mattilda/app/apiclient"
)

// fakeAuthAPI scripts the backend's answers per call.
type fakeAuthAPI struct {
	loginResults []loginResult
	loginCalls   int
	registerErr  error
	registered   *apiclient.RegisterRequest
}

type loginResult struct {
	token string
	err   error
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (string, error) {
	result := f.loginResults[f.loginCalls]
	f.loginCalls++
	return result.token, result.err
}

func (f *fakeAuthAPI) Register(_ context.Context, req apiclient.RegisterRequest) error {
	f.registered = &req
	return f.registerErr
}

var errRejected = errors.New("rejected")

func TestLoginFlowDirectSuccess(t *testing.T) {
	api := &fakeAuthAPI{loginResults: []loginResult{{token: "tok-1"}}}
	flow := NewLoginFlow(api, nil)

	token, err := flow.Run(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, 1, api.loginCalls)
	assert.Nil(t, api.registered, "no registration on direct success")
}

func TestLoginFlowRegistersUnknownUser(t *testing.T) {
	api := &fakeAuthAPI{loginResults: []loginResult{
		{err: errRejected},
		{token: "tok-2"},
	}}
	flow := NewLoginFlow(api, nil)

	token, err := flow.Run(context.Background(), "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, StateAuthenticated, flow.State())
	assert.Equal(t, 2, api.loginCalls)

	require.NotNil(t, api.registered)
	assert.Equal(t, "bob", api.registered.Username)
	assert.Equal(t, "bob@example.com", api.registered.Email)
	assert.Equal(t, "bob", api.registered.FullName)
}

func TestLoginFlowFailsWhenRegistrationRejected(t *testing.T) {
	api := &fakeAuthAPI{
		loginResults: []loginResult{{err: errRejected}},
		registerErr:  errors.New("username taken"),
	}
	flow := NewLoginFlow(api, nil)

	_, err := flow.Run(context.Background(), "carol", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registration failed")
	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, 1, api.loginCalls, "no retry after failed registration")
}

func TestLoginFlowFailsWhenRetryLoginRejected(t *testing.T) {
	api := &fakeAuthAPI{loginResults: []loginResult{
		{err: errRejected},
		{err: errRejected},
	}}
	flow := NewLoginFlow(api, nil)

	_, err := flow.Run(context.Background(), "dave", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login after registration failed")
	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, 2, api.loginCalls)
}

func TestLoginStateString(t *testing.T) {
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "registering", StateRegistering.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "failed", StateFailed.String())
}
