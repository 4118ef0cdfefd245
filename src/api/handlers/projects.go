package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"greenvest/src/repositories"
	"greenvest/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	filter := repositories.ProjectFilter{
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
	}

	projects, err := h.ProjectService.GetAll(ctx, filter)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"projects": projects}, http.StatusOK)
}

func (h *Handler) GetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		h.HandleErrors(w, utils.BadRequest("missing slug URL parameter"))
		return
	}

	project, err := h.ProjectService.GetBySlug(ctx, slug)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"project": project}, http.StatusOK)
}

func (h *Handler) GetActiveOffering(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid project id"))
		return
	}

	offering, err := h.ProjectService.GetActiveOffering(ctx, projectID)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"offering": offering}, http.StatusOK)
}
