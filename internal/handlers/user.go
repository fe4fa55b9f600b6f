package handlers

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler — CRUD пользователей. Все операции, кроме регистрации,
// требуют сессию; изменение и удаление — только своей записи.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid user ID")
	}
	return id, nil
}

// Create — регистрация, единственная операция над пользователями без сессии.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateUser: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := requireSession(r); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := requireSession(r); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if session.UserID != id {
		writeError(w, h.Logger, apperr.Forbidden("you are not authorised to modify this resource"))
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateUser: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}

	user, err := h.UserService.Update(r.Context(), id, service.UserUpdate{Username: req.Username, Email: req.Email})
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	if session.UserID != id {
		writeError(w, h.Logger, apperr.Forbidden("you are not authorised to modify this resource"))
		return
	}

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
