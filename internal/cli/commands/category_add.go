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

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Create a category" }
func (categoryAddCmd) Usage() string       { return "category-add <name> [description] [color]" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	req := CreateCategoryRequest{Name: args[0]}
	if len(args) > 1 {
		req.Description = args[1]
	}
	if len(args) > 2 {
		req.Color = args[2]
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/categories"
	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return errors.New(api.FailMessage(body))
	}

	env, err := api.DecodeEnvelope(body)
	if err != nil {
		return err
	}
	var data struct {
		Category model.Category `json:"category"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("decode category: %w", err)
	}
	fmt.Fprintf(Out, "Created category %s (%s)\n", data.Category.ID, data.Category.Name)
	return nil
}

func init() { RegisterCmd(categoryAddCmd{}) }
