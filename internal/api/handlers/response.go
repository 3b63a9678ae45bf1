package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes ограничение размера тела JSON запроса
const MaxBodyBytes = 1 << 20

const msgInternalError = "internal server error"

// ActionResult результат изменяющей операции
type ActionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DecodeJSON декодирует тело запроса в v, неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondSuccess отправляет {"success": true}
func RespondSuccess(w http.ResponseWriter, status int) {
	RespondJSON(w, status, ActionResult{Success: true})
}

// RespondError отправляет {"success": false, "error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ActionResult{Success: false, Error: message})
}

// RespondBadRequest отправляет 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500
// Если message пустой, используется общее сообщение
func RespondInternalError(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgInternalError
	}
	RespondError(w, http.StatusInternalServerError, message)
}
