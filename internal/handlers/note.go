package handlers

import (
	"NoteKeeper/internal/apperr"
	"NoteKeeper/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler — CRUD заметок плюс фильтр по категории.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

type CreateNoteRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CategoryID *string `json:"categoryId"`
}

// UpdateNoteRequest — частичное обновление: отсутствующие поля не трогаем.
// categoryId хранится сырым, чтобы отличать null от отсутствия поля.
type UpdateNoteRequest struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	CategoryID json.RawMessage `json:"categoryId"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	notes, err := h.NoteService.List(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccessList(w, http.StatusOK, len(notes), "", map[string]any{"notes": notes})
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateNote: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}

	note, err := h.NoteService.Create(r.Context(), session.UserID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"note": note})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	note, err := h.NoteService.Get(r.Context(), session.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"note": note})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateNote: invalid request body", "error", err)
		writeError(w, h.Logger, apperr.BadRequest("invalid request"))
		return
	}

	upd := service.NoteUpdate{Title: req.Title, Content: req.Content}
	if len(req.CategoryID) > 0 {
		var id *string
		if err := json.Unmarshal(req.CategoryID, &id); err != nil {
			writeError(w, h.Logger, apperr.BadRequest("invalid request"))
			return
		}
		if id == nil {
			// явный null снимает категорию с заметки
			id = new(string)
		}
		upd.CategoryID = id
	}

	note, err := h.NoteService.Update(r.Context(), session.UserID, chi.URLParam(r, "id"), upd)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"note": note})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	if err := h.NoteService.Delete(r.Context(), session.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	session, err := requireSession(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	category, notes, err := h.NoteService.ListByCategory(r.Context(), session.UserID, chi.URLParam(r, "categoryId"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeSuccessList(w, http.StatusOK, len(notes), "", map[string]any{
		"category": category,
		"notes":    notes,
	})
}
