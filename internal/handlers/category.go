package handlers

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// CategoryHandler — создание и список категорий пользователя.
type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Logger: logger}
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateCategory: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}

	category, err := h.CategoryService.Create(r.Context(), session.UserID, req.Name, req.Description, req.Color)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccessMsg(w, http.StatusCreated, "New category created successfully", map[string]any{"category": category})
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	categories, err := h.CategoryService.List(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccessList(w, http.StatusOK, len(categories), "user note categories retrieved successfully", map[string]any{"categories": categories})
}
