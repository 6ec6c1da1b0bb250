// internal/wire/wire.go
package wire

import (
	"net/http"

	"ticket-purchase/internal/adaptor"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/gateway"
	"ticket-purchase/pkg/middleware"
	"ticket-purchase/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(config *utils.Config, logger *zap.Logger) *App {
	// External collaborators
	reservation := gateway.NewReservationClient(config.Reservation, logger)
	payment := gateway.NewPaymentClient(config.Payment, logger)

	// Initialize services and handlers
	service := usecase.NewService(reservation, payment, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wirePurchase(r, handler.Purchase)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
