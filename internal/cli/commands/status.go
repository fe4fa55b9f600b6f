package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/cli/auth"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether the stored token is accepted" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		fmt.Fprintln(Out, "Status: anonymous (no stored token)")
		return nil
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	resp, body, err := api.GetJSON(endpoint, token)
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
		fmt.Fprintf(Out, "Status: authorized, %d notes on server\n", env.Results)
		return nil
	case http.StatusUnauthorized:
		fmt.Fprintln(Out, "Status: anonymous (token expired or rejected)")
		return nil
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.FailMessage(body))
	}
}

func init() { RegisterCmd(statusCmd{}) }
