package v1

import (
	"encoding/json"
	"net/http"

	"github.com/saimahendra282/testdeployment/internal/domain"
)

// Тексты ответов, которые ожидает фронтенд
const (
	MsgUploadOK      = "Files uploaded and metadata saved successfully!"
	MsgUploadMissing = "Please upload both an image and an MP3 file."
	MsgUploadFailed  = "Error uploading files."
	MsgListFailed    = "Error retrieving music list."
	MsgFileNotFound  = "File not found"
	MsgBadRequest    = "Bad request."
	MsgTooLarge      = "Request entity too large."
	MsgNotReady      = "Service is not ready."
)

// WriteJSON пишет JSON-тело; для HEAD — без тела
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Шорткаты ошибок
func WriteMessage(w http.ResponseWriter, r *http.Request, status int, text string) {
	WriteJSON(w, r, status, domain.Msg(text))
}

func WriteFail(w http.ResponseWriter, r *http.Request, status int, text string, err error) {
	WriteJSON(w, r, status, domain.Fail(text, err))
}
