package http

import (
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(printUC usecase.PrintUC, soundUC usecase.SoundUC, kioskUC usecase.KioskUC) {
	r.router.Use(middleware.Recoverer)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerPrintRoutes(v1, NewPrintHandler(printUC, r.logger))
		registerKioskRoutes(v1, NewKioskHandler(kioskUC, soundUC, r.logger))
	})
}

func registerPrintRoutes(router chi.Router, h *PrintHandler) {
	router.Post("/print", h.print)
	router.Get("/printer/status", h.printerStatus)
	router.Get("/print-jobs/{id}", h.getPrintJob)
}

func registerKioskRoutes(router chi.Router, h *KioskHandler) {
	router.Post("/sound", h.playSound)

	router.Route("/kiosk", func(kr chi.Router) {
		kr.Get("/config", h.config)
		kr.Get("/autofill", h.autofill)
	})
}
