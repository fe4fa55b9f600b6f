package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NoteKeeper/internal/cli/api"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/users"
	req := RegisterRequest{Username: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Account created, now run: login <email> <password>")
		return nil
	case http.StatusBadRequest:
		return errors.New(api.FailMessage(body))
	default:
		return fmt.Errorf("server error: %s", api.FailMessage(body))
	}
}

func init() { RegisterCmd(registerCmd{}) }
