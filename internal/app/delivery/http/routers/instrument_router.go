package routers

import (
	"outcomes-service/internal/app/delivery/http/controllers"
	"outcomes-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachInstrumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, instrumentController *controllers.InstrumentController) {
	router.Get("/", instrumentController.ListJoints)
	router.Get("/{joint_key}/instruments", instrumentController.ListInstruments)
	router.Get("/{joint_key}/instruments/{instrument_id}", instrumentController.FindInstrument)
}
