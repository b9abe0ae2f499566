package web

import (
	"log"
	"net/http"

	_ "github.com/saimahendra282/testdeployment/internal/docs"
	"github.com/saimahendra282/testdeployment/internal/transport/web/mw"
	"github.com/saimahendra282/testdeployment/internal/transport/web/ui"
	"github.com/saimahendra282/testdeployment/internal/transport/web/v1/health"
	"github.com/saimahendra282/testdeployment/internal/transport/web/v1/music"
	httpSwagger "github.com/swaggo/http-swagger"
)

func newRouter(hh *health.Handler, mh *music.Handler, maxBody int64, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// ui
	mux.HandleFunc("GET /{$}", ui.Index)

	// music
	mux.HandleFunc("POST /upload", limitBody(maxBody, mh.Upload))
	mux.HandleFunc("GET /music", mh.List)
	mux.HandleFunc("GET /file/{id}", mh.File)

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mw.CORS(mux)))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
