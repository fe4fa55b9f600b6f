package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/cli/auth"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email := args[0]
	password := args[1]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/login"
	req := LoginRequest{Email: email, Password: password}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		env, err := api.DecodeEnvelope(body)
		if err != nil {
			return err
		}
		var data struct {
			Token     string `json:"token"`
			ExpiresIn int64  `json:"expiresIn"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("decode login data: %w", err)
		}
		if data.Token == "" {
			return errors.New("no token in response")
		}
		if err := auth.SaveToken(cfg.TokenFile, data.Token); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized, http.StatusNotFound:
		return errors.New("invalid email or password")
	default:
		return fmt.Errorf("server error: %s", api.FailMessage(body))
	}
}

func init() { RegisterCmd(loginCmd{}) }
