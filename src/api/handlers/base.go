package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"greenvest/src/services"
	"greenvest/src/utils"

	"github.com/sirupsen/logrus"
)

// userIDHeader carries the authenticated user's id, resolved by the auth
// layer in front of this service.
const userIDHeader = "X-User-ID"

type Handler struct {
	InvestmentService services.InvestmentServiceI
	ProjectService    services.ProjectServiceI
	KycService        services.KycServiceI
	DashboardService  services.DashboardServiceI
	Logger            *logrus.Logger
	ProductionMode    bool
}

func NewHandler(
	investmentService services.InvestmentServiceI,
	projectService services.ProjectServiceI,
	kycService services.KycServiceI,
	dashboardService services.DashboardServiceI,
	logger *logrus.Logger,
	productionMode bool,
) *Handler {
	return &Handler{
		InvestmentService: investmentService,
		ProjectService:    projectService,
		KycService:        kycService,
		DashboardService:  dashboardService,
		Logger:            logger,
		ProductionMode:    productionMode,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps domain errors onto HTTP responses: validation failures
// are 422, missing entities 404, everything else an opaque 500.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var httpErr *utils.HTTPError

	switch {
	case errors.As(err, &validationErr):
		utils.WriteError(w, utils.UnprocessableEntity(validationErr.Message))
	case errors.As(err, &notFoundErr):
		utils.WriteError(w, utils.NotFound(notFoundErr.Error()))
	case errors.As(err, &httpErr):
		utils.WriteError(w, httpErr)
	default:
		h.Logger.Error(err)
		utils.WriteError(w, utils.InternalServerError("Internal Server Error"))
	}
}

func userIDFromRequest(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, utils.Unauthorized("missing " + userIDHeader + " header")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, utils.Unauthorized("invalid " + userIDHeader + " header")
	}
	return userID, nil
}
