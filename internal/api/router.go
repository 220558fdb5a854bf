package api

import (
	_ "fxboard/docs"
	"fxboard/internal/config"
	investhandler "fxboard/internal/invest/handler"
	rateshandler "fxboard/internal/rates/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(ratesHandler *rateshandler.Handler, investHandler *investhandler.Handler, corsCfg config.CORS) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	if len(corsCfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsCfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/rates/current", ratesHandler.GetCurrent)
	router.Get("/api/v1/rates/spot", ratesHandler.GetSpotAll)
	router.Get("/api/v1/rates/spot/{source}", ratesHandler.GetSpot)
	router.Get("/api/v1/rates/period/{months:[0-9]+}", ratesHandler.GetPeriod)

	router.Get("/api/v1/investments/{currency:[A-Za-z]{3}}", investHandler.List)
	router.Post("/api/v1/investments/{currency:[A-Za-z]{3}}", investHandler.Create)
	router.Delete("/api/v1/investments/{currency:[A-Za-z]{3}}/{id}", investHandler.Delete)
	router.Post("/api/v1/investments/{currency:[A-Za-z]{3}}/{id}/sell", investHandler.Sell)
	router.Get("/api/v1/sell-records/{currency:[A-Za-z]{3}}", investHandler.ListSellRecords)
	router.Delete("/api/v1/sell-records/{currency:[A-Za-z]{3}}/{id}", investHandler.DeleteSellRecord)
	return router
}
