package mw

import (
	"net/http"

	"github.com/rs/cors"
)

// allowAll: любой origin, любые заголовки, методы GET/HEAD/PUT/PATCH/POST/DELETE;
// preflight отвечает 204 без вызова хендлера
var allowAll = cors.AllowAll()

func CORS(next http.Handler) http.Handler {
	return allowAll.Handler(next)
}
