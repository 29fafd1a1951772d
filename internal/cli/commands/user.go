package commands

import (
	"PassVault/internal/cli/api"
	"PassVault/internal/cli/auth"
	"PassVault/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type countCmd struct{}

func (countCmd) Name() string        { return "count" }
func (countCmd) Description() string { return "Show how many records you have per kind" }
func (countCmd) Usage() string       { return "count" }

func (countCmd) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "/api/users/count"), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}
	return printJSON(body)
}

type eraseCmd struct{}

func (eraseCmd) Name() string        { return "erase" }
func (eraseCmd) Description() string { return "Delete the account and every stored record" }
func (eraseCmd) Usage() string       { return "erase <password>" }

func (eraseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/users/erase"),
		map[string]string{"password": args[0]}, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusNoContent:
		// локальный токен больше никому не нужен
		_ = auth.Store{Path: cfg.TokenFile}.Clear()
		fmt.Fprintln(Out, "Account erased")
		return nil
	case http.StatusUnauthorized:
		return errors.New("password confirmation failed")
	default:
		return serverError(body)
	}
}

func init() {
	RegisterCmd(countCmd{})
	RegisterCmd(eraseCmd{})
}
