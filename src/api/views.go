package api

import (
	"net/http"
	"time"

	"greenvest/src/api/handlers"
	"greenvest/src/config"
	"greenvest/src/repositories"
	"greenvest/src/services"
	"greenvest/src/utils"
	redis_utils "greenvest/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
)

const offeringCacheTTL = 10 * time.Second

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config, db *pgxpool.Pool) (*Server, error) {
	logger := utils.NewLogger(cfg.Service.LogLevel)

	userRepo := repositories.NewUserRepository(db)
	kycRepo := repositories.NewKycRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	offeringRepo := repositories.NewOfferingRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	txManager := repositories.NewTxManager(db)

	var offeringCache services.OfferingCache
	if cfg.Databases.Redis.Enabled {
		redisHandler, err := redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
		offeringCache = services.NewRedisOfferingCache(redisHandler, offeringCacheTTL)
	}

	kycService := services.NewKycService(kycRepo)
	investmentService := services.NewInvestmentService(
		txManager, userRepo, kycService, projectRepo, offeringRepo,
		investmentRepo, transactionRepo, offeringCache,
	)
	projectService := services.NewProjectService(projectRepo, offeringRepo)
	dashboardService := services.NewDashboardService(investmentRepo, transactionRepo)

	server := &Server{
		Router: chi.NewRouter(),
		Handler: handlers.NewHandler(
			investmentService, projectService, kycService, dashboardService,
			logger, cfg.IsProduction(),
		),
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-User-ID"},
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/projects", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllProjects)
		r.Get("/{slug}", s.Handler.GetProjectBySlug)
		r.Get("/{id}/offering", s.Handler.GetActiveOffering)
	})

	s.Router.Route("/api/investments", func(r chi.Router) {
		r.Get("/", s.Handler.GetUserInvestments)
		r.Post("/preview", s.Handler.PreviewInvestment)
		r.Post("/confirm", s.Handler.ConfirmInvestment)
	})

	s.Router.Route("/api/kyc", func(r chi.Router) {
		r.Get("/status", s.Handler.GetKycStatus)
		r.Post("/start", s.Handler.StartKyc)
		r.Post("/mock-verify", s.Handler.MockVerifyKyc)
	})

	s.Router.Get("/api/dashboard", s.Handler.GetDashboardOverview)
	s.Router.Get("/api/transactions", s.Handler.GetUserTransactions)
}

func NewHTTPServer(server *Server, port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
