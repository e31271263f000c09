package handlers

import (
	"encoding/json"
	"net/http"
)

// Response единый конверт всех ответов API.
// ack=0 успех, ack=1 ошибка; клиенты смотрят на ack, не на HTTP статус.
type Response struct {
	Ack     int         `json:"ack"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondData отправляет успешный ответ с данными
func RespondData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Ack: 0, Data: data})
}

// RespondMessage отправляет успешный ответ с текстовым сообщением
func RespondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Ack: 0, Message: message})
}

// RespondError отправляет ошибку.
// Любая ошибка отдается с HTTP 400: исторический контракт API не различает
// статусы, различается только сообщение.
func RespondError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Ack: 1, Message: message})
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
