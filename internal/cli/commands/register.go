package commands

import (
	"PassVault/internal/cli/api"
	"PassVault/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/users/auth/sign-up"),
		credentialsRequest{Email: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Account created. Now run: pvcli login <email> <password>")
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	default:
		return serverError(body)
	}
}

func init() { RegisterCmd(registerCmd{}) }
