package commands

import (
	"PassVault/internal/cli/api"
	"PassVault/internal/config"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// printJSON печатает тело ответа с отступами, как есть — без переименования полей.
func printJSON(body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(Out, buf.String())
	return nil
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List all records of a kind" }
func (listCmd) Usage() string       { return "list <kind>" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, path), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}
	return printJSON(body)
}

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show a single record by id" }
func (getCmd) Usage() string       { return "get <kind> <id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}
	if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, path+"/"+args[1]), nil, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return printJSON(body)
	case http.StatusNotFound:
		return errors.New("record doesn't exist")
	case http.StatusForbidden:
		return errors.New("record doesn't belong to you")
	default:
		return serverError(body)
	}
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Create a record from a JSON document" }
func (addCmd) Usage() string       { return `add <kind> '<json>'` }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(body)
	}
	return printJSON(body)
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a record by id" }
func (deleteCmd) Usage() string       { return "delete <kind> <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}
	if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodDelete, endpoint(cfg, path+"/"+args[1]), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return serverError(body)
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

type editNoteCmd struct{}

func (editNoteCmd) Name() string        { return "edit-note" }
func (editNoteCmd) Description() string { return "Update title and/or text of a note" }
func (editNoteCmd) Usage() string       { return `edit-note <id> '<json>'` }

func (editNoteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return ErrUsage
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.DoJSON(ctx, http.MethodPut, endpoint(cfg, "/api/notes/"+args[0]), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}
	return printJSON(body)
}

func init() {
	RegisterCmd(listCmd{})
	RegisterCmd(getCmd{})
	RegisterCmd(addCmd{})
	RegisterCmd(deleteCmd{})
	RegisterCmd(editNoteCmd{})
}
