package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"frigate/infras/postgres"
	"frigate/transport/http/response"
)

const checkTimeout = 2 * time.Second

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// Health reports liveness of the server and its backing services.
// @Summary Health check
// @Description Ping the database and cache and report overall health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status] "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := Status{Status: "ok", Database: "ok", Cache: "ok"}
	healthy := true

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database health check failed")

		status.Database = "unreachable"
		healthy = false
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("cache health check failed")

		status.Cache = "unreachable"
		healthy = false
	}

	if !healthy {
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
