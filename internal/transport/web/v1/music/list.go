package music

import (
	"net/http"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"github.com/saimahendra282/testdeployment/internal/transport/web/logx"
	"github.com/saimahendra282/testdeployment/internal/transport/web/mw"
	v1 "github.com/saimahendra282/testdeployment/internal/transport/web/v1"
)

// List godoc
// @Summary     List music
// @Description Все записи Music со ссылками на /file/{id} для картинки и аудио. Без пагинации.
// @Tags        music
// @Produce     json
// @Success     200 {array}  domain.MusicEntry
// @Failure     500 {object} domain.APIMessage
// @Router      /music [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "music.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	records, err := h.Repo.FindAll(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "find all failed", err)
		v1.WriteFail(w, r, http.StatusInternalServerError, v1.MsgListFailed, err)
		return
	}

	base := baseURL(r)
	out := make([]domain.MusicEntry, 0, len(records))
	for _, m := range records {
		e, err := toEntry(base, m)
		if err != nil {
			// битая запись не должна ронять весь список
			logx.Error(h.Log, reqID, op, "skip record", err, "id", m.ID, "name", m.Name)
			continue
		}
		out = append(out, e)
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(out), "skipped", len(records)-len(out))
	v1.WriteJSON(w, r, http.StatusOK, out)
}
