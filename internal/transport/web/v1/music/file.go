package music

import (
	"errors"
	"io"
	"net/http"

	"github.com/saimahendra282/testdeployment/internal/transport/web/logx"
	"github.com/saimahendra282/testdeployment/internal/transport/web/mw"
	v1 "github.com/saimahendra282/testdeployment/internal/transport/web/v1"
)

const chunkSize = 32 << 10

// File godoc
// @Summary     Stream file by id
// @Description Отдаёт содержимое файла из blob storage потоком. Content-Type не выставляется, Range не поддерживается.
// @Tags        music
// @Produce     octet-stream
// @Param       id path string true "blob id"
// @Success     200 {file}   []byte
// @Failure     404 {object} domain.APIMessage
// @Router      /file/{id} [get]
func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	const op = "music.file"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	rc, err := h.Storage.Get(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "open failed", err, "id", id)
		v1.WriteMessage(w, r, http.StatusNotFound, v1.MsgFileNotFound)
		return
	}
	defer rc.Close()

	// первый чанк читаем до заголовков: ошибка здесь ещё может стать 404
	buf := make([]byte, chunkSize)
	n, err := rc.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		logx.Error(h.Log, reqID, op, "read failed", err, "id", id)
		v1.WriteMessage(w, r, http.StatusNotFound, v1.MsgFileNotFound)
		return
	}

	// без Content-Type и без автоопределения типа
	w.Header()["Content-Type"] = nil
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	written := int64(0)
	if n > 0 {
		m, werr := w.Write(buf[:n])
		written += int64(m)
		if werr != nil {
			logx.Error(h.Log, reqID, op, "client write failed", werr, "id", id, "written", written)
			return
		}
	}
	if err == nil {
		m, cerr := io.CopyBuffer(w, rc, buf)
		written += m
		if cerr != nil {
			// заголовки уже ушли — только логируем, ответ обрезан
			logx.Error(h.Log, reqID, op, "stream aborted", cerr, "id", id, "written", written)
			return
		}
	}
	logx.Info(h.Log, reqID, op, "ok", "id", id, "bytes", written)
}
