package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/saimahendra282/testdeployment/internal/config"
	"github.com/saimahendra282/testdeployment/internal/transport/web/v1/health"
	"github.com/saimahendra282/testdeployment/internal/transport/web/v1/music"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, st Stores) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	musicLog := log.New(logger.Writer(), logger.Prefix()+"[music] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, DB: st.Music, Storage: st.Blobs}
	musicHandler := &music.Handler{Log: musicLog, Storage: st.Blobs, Repo: st.Music}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(healthHandler, musicHandler, cfg.MaxBodyBytes(), logger),
		// тело до MAX_BODY_MB в base64 — даём время на чтение;
		// WriteTimeout не ставим, чтобы не обрывать стриминг файлов
		ReadTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
