package routes

import (
	"net/http"

	"github.com/ecogauge/back/internal/api/handlers"
	"github.com/ecogauge/back/internal/api/middleware"
	"github.com/ecogauge/back/internal/metrics"
	"github.com/ecogauge/back/internal/utils"
)

// Router sets up all the routes for the application
func NewRouter(
	authHandler *handlers.AuthHandler,
	questionnaireHandler *handlers.QuestionnaireHandler,
	healthHandler *handlers.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/", healthHandler.Health)
	mux.HandleFunc("/health", healthHandler.Health)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", metrics.Handler())

	// Authentication endpoints
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			authHandler.Login(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			authHandler.Logout(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// User info endpoint (supports GET and OPTIONS)
	mux.HandleFunc("/api/user-info", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			authHandler.GetUserInfo(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Questionnaire endpoints
	mux.HandleFunc("/api/questionnaire", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			questionnaireHandler.GetQuestionnaire(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/submit-questionnaire", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST", "OPTIONS":
			questionnaireHandler.Submit(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/success", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			questionnaireHandler.GetSuccess(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/report", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET", "OPTIONS":
			questionnaireHandler.GetReport(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Apply CORS middleware to all routes
	return middleware.CORSMiddleware(mux)
}
