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

type CreateNoteRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CategoryID *string `json:"categoryId,omitempty"`
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Create a note" }
func (noteAddCmd) Usage() string       { return "note-add <title> <content> [categoryID]" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	req := CreateNoteRequest{Title: args[0], Content: args[1]}
	if len(args) == 3 {
		req.CategoryID = &args[2]
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return errors.New(api.FailMessage(body))
	}

	n, err := decodeNote(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created note %s\n", n.ID)
	return nil
}

func init() { RegisterCmd(noteAddCmd{}) }
