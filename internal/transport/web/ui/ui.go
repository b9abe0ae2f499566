// Package ui отдаёт встроенную одностраничную форму загрузки и плеер.
package ui

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var index []byte

func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(index)
}
