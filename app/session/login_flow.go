package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/angdmz/mattilda/app/apiclient"
)

// AuthAPI is the slice of the backend client the login flow needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) error
}

// LoginState tracks the flow's progress so each failure mode is observable.
type LoginState int

const (
	StateUnauthenticated LoginState = iota
	StateRegistering
	StateAuthenticated
	StateFailed
)

func (s LoginState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateRegistering:
		return "registering"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// LoginFlow runs the sign-in sequence: try login; on rejection register a
// new account with a synthesized email and display name equal to the
// username, then retry login once. Unauthenticated → Registering →
// Authenticated, with a Failed terminal for either the registration or the
// post-registration login being rejected.
type LoginFlow struct {
	api    AuthAPI
	logger *zap.Logger
	state  LoginState
}

// NewLoginFlow builds a flow in the Unauthenticated state.
func NewLoginFlow(api AuthAPI, logger *zap.Logger) *LoginFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginFlow{api: api, logger: logger, state: StateUnauthenticated}
}

// State returns the flow's current state.
func (f *LoginFlow) State() LoginState {
	return f.state
}

// Run executes the flow and returns the bearer token on success.
func (f *LoginFlow) Run(ctx context.Context, username, password string) (string, error) {
	token, err := f.api.Login(ctx, username, password)
	if err == nil {
		f.state = StateAuthenticated
		return token, nil
	}

	f.state = StateRegistering
	f.logger.Info("login rejected, attempting registration", zap.String("username", username))

	req := apiclient.RegisterRequest{
		Username: username,
		Password: password,
		Email:    fmt.Sprintf("%s@example.com", username),
		FullName: username,
	}
	if err := f.api.Register(ctx, req); err != nil {
		f.state = StateFailed
		return "", fmt.Errorf("registration failed: %w", err)
	}

	token, err = f.api.Login(ctx, username, password)
	if err != nil {
		f.state = StateFailed
		return "", fmt.Errorf("login after registration failed: %w", err)
	}
	f.state = StateAuthenticated
	return token, nil
}
