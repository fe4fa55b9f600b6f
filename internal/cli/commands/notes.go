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
	"NoteKeeper/internal/cli/auth"
)

// requireToken загружает сохранённый токен; без него команды с данными не работают.
func requireToken(cfg *config.Config) (string, error) {
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return "", errors.New("not logged in, run: login <email> <password>")
	}
	return token, nil
}

func printNote(n *model.Note) {
	cat := ""
	if n.Category != nil {
		cat = fmt.Sprintf("  [%s]", n.Category.Name)
	}
	fmt.Fprintf(Out, "- %s  %s%s\n", n.ID, n.Title, cat)
}

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "List notes, newest updates first" }
func (notesCmd) Usage() string       { return "notes [categoryID]" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	if len(args) == 1 {
		endpoint += "/category/" + args[0]
	}
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.FailMessage(body))
	}

	env, err := api.DecodeEnvelope(body)
	if err != nil {
		return err
	}
	var data struct {
		Notes []model.Note `json:"notes"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("decode notes: %w", err)
	}
	if len(data.Notes) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for i := range data.Notes {
		printNote(&data.Notes[i])
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(data.Notes))
	return nil
}

func init() { RegisterCmd(notesCmd{}) }
