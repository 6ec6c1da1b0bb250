package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/request"
	"ticket-purchase/internal/dto/response"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

type PurchaseHandler struct {
	service usecase.PurchaseService
	log     *zap.Logger
}

func NewPurchaseHandler(service usecase.PurchaseService, log *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		log:     log.With(zap.String("handler", "purchase")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *PurchaseHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// A missing tickets field stays a nil slice, which the service
	// distinguishes from an empty list.
	outcome, err := h.service.PurchaseTickets(r.Context(), req.AccountID, req.Tickets...)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseSuccess(w, "success", response.PurchaseToResponse(outcome))
}

// handleServiceError maps purchase rejections to HTTP responses
func (h *PurchaseHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var rejection *entity.InvalidPurchaseError
	if !errors.As(err, &rejection) {
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	errMsg := rejection.Message

	switch {
	case strings.Contains(errMsg, "unable to reserve seat"),
		strings.Contains(errMsg, "unable to make payment"):
		h.log.Error(operation+" failed - collaborator error",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg)

	default:
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		var data any
		if len(rejection.Data) > 0 {
			data = rejection.Data
		}
		utils.ResponseBadRequest(w, errMsg, data)
	}
}
