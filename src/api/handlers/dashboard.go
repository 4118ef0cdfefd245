package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"greenvest/src/utils"
)

const defaultTransactionsLimit = 10

func (h *Handler) GetDashboardOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	overview, err := h.DashboardService.Overview(ctx, userID)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, overview, http.StatusOK)
}

func (h *Handler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	userID, err := userIDFromRequest(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	limit := defaultTransactionsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.HandleErrors(w, utils.BadRequest("invalid limit parameter"))
			return
		}
		limit = parsed
	}

	transactions, err := h.DashboardService.Transactions(ctx, userID, limit)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"transactions": transactions}, http.StatusOK)
}
