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

type noteDelCmd struct{}

func (noteDelCmd) Name() string        { return "note-del" }
func (noteDelCmd) Description() string { return "Delete a note" }
func (noteDelCmd) Usage() string       { return "note-del <id>" }

func (noteDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + args[0]
	resp, body, err := api.DoJSON(http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return errors.New(api.FailMessage(body))
	}
	fmt.Fprintf(Out, "Deleted note %s\n", args[0])
	return nil
}

func init() { RegisterCmd(noteDelCmd{}) }
