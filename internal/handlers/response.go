package handlers

import (
	"NoteKeeper/internal/apperr"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// successBody — единый конверт успешного ответа:
// {status:"success", results?, message?, data}.
type successBody struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// failBody — единый конверт ошибки: {status:"fail", message}.
type failBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, successBody{Status: "success", Data: data})
}

func writeSuccessMsg(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, successBody{Status: "success", Message: message, Data: data})
}

func writeSuccessList(w http.ResponseWriter, code int, results int, message string, data any) {
	writeJSON(w, code, successBody{Status: "success", Results: &results, Message: message, Data: data})
}

// writeError — единственная точка трансляции ошибок в HTTP-статус и конверт.
// Неклассифицированные ошибки логируются и уходят клиенту как 500 без деталей.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var code int
	message := err.Error()

	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		code = http.StatusBadRequest
	case apperr.KindUnauthorized:
		code = http.StatusUnauthorized
	case apperr.KindForbidden:
		code = http.StatusForbidden
	case apperr.KindNotFound:
		code = http.StatusNotFound
	default:
		code = http.StatusInternalServerError
		logger.Errorw("unclassified error", "error", err)
		message = "internal error"
	}

	writeJSON(w, code, failBody{Status: "fail", Message: message})
}
