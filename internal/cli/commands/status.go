package commands

import (
	"PassVault/internal/cli/api"
	"PassVault/internal/config"
	"context"
	"fmt"
	"net/http"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check that the server is up" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	resp, _, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "/health"), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy (status %d)", resp.StatusCode)
	}
	fmt.Fprintf(Out, "Server %s is up\n", cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
