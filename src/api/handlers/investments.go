package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"greenvest/src/schemas"
	"greenvest/src/utils"
)

// IdempotencyKeyHeader carries the caller-chosen opaque token that makes a
// confirmation request safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

func (h *Handler) PreviewInvestment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.InvestmentPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	preview, err := h.InvestmentService.Preview(ctx, userID, req.OfferingID, req.Amount)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"preview": preview}, http.StatusOK)
}

func (h *Handler) ConfirmInvestment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.InvestmentConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	investment, err := h.InvestmentService.Confirm(ctx, userID, req.OfferingID, req.Amount, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{
		"message":    "Investment successful",
		"investment": schemas.NewInvestmentResponse(investment),
	}, http.StatusCreated)
}

func (h *Handler) GetUserInvestments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	investments, err := h.InvestmentService.GetUserInvestments(ctx, userID)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	responses := make([]*schemas.InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, schemas.NewInvestmentResponse(&investments[i]))
	}

	h.respond(w, r, map[string]interface{}{"investments": responses}, http.StatusOK)
}
