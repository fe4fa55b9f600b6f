package commands

import (
	"NoteKeeper/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"NoteKeeper/internal/cli/api"
)

// UpdateNoteRequest — частичное обновление: не заданные флаги не отправляются.
type UpdateNoteRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

type noteEditCmd struct{}

func (noteEditCmd) Name() string        { return "note-edit" }
func (noteEditCmd) Description() string { return "Update fields of a note" }
func (noteEditCmd) Usage() string {
	return "note-edit <id> [-title <t>] [-content <c>] [-category <id>]"
}

func (noteEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id := args[0]

	fs := flag.NewFlagSet("note-edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	category := fs.String("category", "", "new category id, empty value detaches the category")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	req := UpdateNoteRequest{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "content":
			req.Content = content
		case "category":
			req.CategoryID = category
		}
	})
	if req.Title == nil && req.Content == nil && req.CategoryID == nil {
		return ErrUsage
	}

	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + id
	resp, body, err := api.DoJSON(http.MethodPut, endpoint, req, token)
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
	fmt.Fprintf(Out, "Updated note %s\n", n.ID)
	return nil
}

func init() { RegisterCmd(noteEditCmd{}) }
