package handlers

import (
	"encoding/json"
	"net/http"
)

// Машиночитаемые причины отказа
const (
	ReasonValidationError  = "ValidationError"
	ReasonNoCapacity       = "NoCapacity"
	ReasonNotFound         = "NotFound"
	ReasonAlreadyCompleted = "AlreadyCompleted"
	ReasonDataUnavailable  = "DataUnavailable"
	ReasonInternal         = "InternalError"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string   `json:"error"`
	Reason string   `json:"reason,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// RespondJSON пишет data в формате JSON с кодом status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку без причины
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondRejection пишет отказ с причиной и (опционально) списком полей
func RespondRejection(w http.ResponseWriter, status int, reason, message string, fields []string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Reason: reason, Fields: fields})
}

// RespondBadRequest 400 ValidationError
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondRejection(w, http.StatusBadRequest, ReasonValidationError, message, nil)
}

// RespondNotFound 404 NotFound
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondRejection(w, http.StatusNotFound, ReasonNotFound, message, nil)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondRejection(w, http.StatusInternalServerError, ReasonInternal, msgInternalError, nil)
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
