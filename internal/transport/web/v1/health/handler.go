package health

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/saimahendra282/testdeployment/internal/transport/web/logx"
	"github.com/saimahendra282/testdeployment/internal/transport/web/mw"
	v1 "github.com/saimahendra282/testdeployment/internal/transport/web/v1"
)

type Pinger interface {
	Ping(context.Context) error
}

type Handler struct {
	Log     *log.Logger
	DB      Pinger
	Storage Pinger
}

type status struct {
	Status string `json:"status"`
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Проверка, жив ли сервис (не зависит от БД)
// @Tags         health
// @Produce      json
// @Success      200  {object}  status
// @Router       /v1/healthz [get]
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	v1.WriteJSON(w, r, http.StatusOK, status{Status: "ok"})
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Проверка готовности сервиса (пинг хранилища метаданных и blob storage)
// @Tags         health
// @Produce      json
// @Success      200  {object}  status
// @Failure      503  {object}  domain.APIMessage
// @Router       /v1/readyz [get]
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	const op = "health.readiness"
	reqID := mw.RequestIDFromCtx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		logx.Error(h.Log, reqID, op, "db ping failed", err)
		v1.WriteFail(w, r, http.StatusServiceUnavailable, v1.MsgNotReady, err)
		return
	}

	if err := h.Storage.Ping(ctx); err != nil {
		logx.Error(h.Log, reqID, op, "storage ping failed", err)
		v1.WriteFail(w, r, http.StatusServiceUnavailable, v1.MsgNotReady, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ready")
	v1.WriteJSON(w, r, http.StatusOK, status{Status: "ready"})
}
