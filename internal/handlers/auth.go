package handlers

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler обрабатывает вход по email и паролю.
type AuthHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(userService *service.UserService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{UserService: userService, Logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login выпускает подписанный токен. 404 для неизвестного email,
// 401 для неверного пароля — статусы различимы намеренно.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, h.Logger, apperr.BadRequest("Email and password are required"))
		return
	}

	res, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccessMsg(w, http.StatusOK, "user login successful", map[string]any{
		"token":     res.Token,
		"expiresIn": res.ExpiresAt.UTC().Unix(),
	})
}
