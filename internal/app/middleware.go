package app

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {
	logWriter := log.StandardLogger().Writer()

	r.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger())))

	r.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(logWriter, next)
	})

	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	))
}
