package handler

import (
	"net/http"
	"time"

	"food-ordering-backend/internal/model/requestresponse"

	"github.com/go-chi/httprate"
)

func LoginRateLimit() func(http.Handler) http.Handler {
	return limitByIP(10, 5*time.Minute)
}

func RefreshRateLimit() func(http.Handler) http.Handler {
	return limitByIP(30, 10*time.Minute)
}

func RegisterRateLimit() func(http.Handler) http.Handler {
	return limitByIP(5, time.Hour)
}

func limitByIP(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, r, http.StatusTooManyRequests, requestresponse.ErrorResponse{
				Error: requestresponse.ErrorDetail{Code: http.StatusTooManyRequests, Text: "too many requests"},
			})
		}),
	)
}
