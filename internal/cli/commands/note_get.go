package commands

import (
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NoteKeeper/internal/cli/api"
)

// decodeNote достаёт заметку из data.note конверта.
func decodeNote(body []byte) (*model.Note, error) {
	env, err := api.DecodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var data struct {
		Note model.Note `json:"note"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode note: %w", err)
	}
	return &data.Note, nil
}

type noteGetCmd struct{}

func (noteGetCmd) Name() string        { return "note-get" }
func (noteGetCmd) Description() string { return "Show one note" }
func (noteGetCmd) Usage() string       { return "note-get <id>" }

func (noteGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + args[0]
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.FailMessage(body))
	}

	n, err := decodeNote(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "ID:      %s\n", n.ID)
	fmt.Fprintf(Out, "Title:   %s\n", n.Title)
	if n.Category != nil {
		fmt.Fprintf(Out, "Category: %s (%s)\n", n.Category.Name, n.Category.Color)
	}
	fmt.Fprintf(Out, "Updated: %s\n", n.UpdatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(Out, n.Content)
	return nil
}

func init() { RegisterCmd(noteGetCmd{}) }
