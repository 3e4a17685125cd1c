package controllers

import (
	"net/http"

	"github.com/nvelasco/cartify-backend/api/responses"
	"github.com/nvelasco/cartify-backend/pkg/config"
	"github.com/nvelasco/cartify-backend/pkg/db"
	pkgerrors "github.com/nvelasco/cartify-backend/pkg/errors"
	"github.com/nvelasco/cartify-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cartify-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when the database answers a ping.
func HealthReady(cfg *config.Config, pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cartify-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
