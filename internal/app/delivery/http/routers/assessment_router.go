package routers

import (
	"outcomes-service/internal/app/delivery/http/controllers"
	"outcomes-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	answerLimiter := middlewares.CreateAnswerRateLimiter()

	router.Use(middlewares.RequireAPIKey)

	router.Post("/", assessmentController.CreateAssessment)
	router.Get("/{run_id}", assessmentController.FindAssessmentByRunID)
	router.Delete("/{run_id}", assessmentController.DeleteAssessmentByRunID)
	router.Put("/{run_id}/patient", assessmentController.UpdatePatient)
	router.Post("/{run_id}/joint", assessmentController.SelectJoint)
	router.Post("/{run_id}/instrument", assessmentController.SelectInstrument)
	router.With(answerLimiter.Limit).Post("/{run_id}/answers", assessmentController.AnswerQuestion)
	router.Post("/{run_id}/previous", assessmentController.PreviousQuestion)
	router.Post("/{run_id}/next", assessmentController.NextQuestion)
	router.Post("/{run_id}/reset", assessmentController.ResetAssessment)
}
