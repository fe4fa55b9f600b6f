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

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/categories"
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
		Categories []model.Category `json:"categories"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("decode categories: %w", err)
	}
	if len(data.Categories) == 0 {
		fmt.Fprintln(Out, "Нет категорий")
		return nil
	}
	for _, c := range data.Categories {
		fmt.Fprintf(Out, "- %s  %s  %s\n", c.ID, c.Name, c.Color)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(data.Categories))
	return nil
}

func init() { RegisterCmd(categoriesCmd{}) }
