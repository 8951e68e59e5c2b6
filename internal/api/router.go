package api

import (
	"net/http"
	"time"

	_ "github.com/AlexZinkM/miao-wallet/docs" // swagger docs
	"github.com/AlexZinkM/miao-wallet/internal/handler"
	"github.com/AlexZinkM/miao-wallet/internal/log"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(suiHandler *handler.SuiHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Sui endpoints
	mux.HandleFunc("/sui/preview", suiHandler.Preview)
	mux.HandleFunc("/sui/transfer", suiHandler.Transfer)
	mux.HandleFunc("/sui/balance", suiHandler.GetBalance)

	// Wallet endpoints
	mux.HandleFunc("/sui/wallet/generate", suiHandler.Generate)
	mux.HandleFunc("/sui/wallet/import", suiHandler.Import)
	mux.HandleFunc("/sui/wallet/address", suiHandler.Address)
	mux.HandleFunc("/sui/wallet/list", suiHandler.List)

	return logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs method, path, status and duration of every request
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.API.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
