package commands

import (
	"PassVault/internal/cli/api"
	"PassVault/internal/cli/auth"
	"PassVault/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store the auth token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/users/auth/sign-in"),
		credentialsRequest{Email: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errors.New("invalid email or password")
	default:
		return serverError(body)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Token == "" {
		return errors.New("no token in server response")
	}
	if err := (auth.Store{Path: cfg.TokenFile}).Save(payload.Token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, _ []string) error {
	if err := (auth.Store{Path: cfg.TokenFile}).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
