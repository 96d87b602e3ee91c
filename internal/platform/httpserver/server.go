package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	assetservice "assetverse/contexts/asset-management/asset-service"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"
	_ "assetverse/internal/platform/httpserver/docs"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

const moduleName = "internal/platform/httpserver"

// HealthChecker is implemented by every store adapter.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Addr           string
	AllowedOrigins []string
	Health         HealthChecker
	Logger         *slog.Logger
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *slog.Logger
	health HealthChecker
	assets assetservice.Module
}

// @title Assetverse API
// @version 1.0
// @description HR asset management: inventory, requests, team affiliations and slot upgrades.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func New(assets assetservice.Module, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(opts.AllowedOrigins))

	s := &Server{
		router: router,
		logger: logger,
		health: opts.Health,
		assets: assets,
	}
	s.http = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.registerRoutes()
	return s
}

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", moduleName,
		"layer", "platform",
		"addr", s.http.Addr,
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down",
		"event", "http_server_shutdown",
		"module", moduleName,
		"layer", "platform",
	)
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for in-process callers and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	r := s.router
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "hello") })
	r.GET("/healthz", s.handleHealth)
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	r.POST("/users", s.handleRegisterUser)
	r.GET("/packages", s.handleListPackages)

	authed := r.Group("/", s.requireAuth())
	authed.GET("/users/:email/role", s.handleUserRole)
	authed.GET("/available-assets", s.handleAvailableAssets)
	authed.POST("/asset-requests", s.handleSubmitRequest)
	authed.GET("/my-requests", s.handleMyRequests)
	authed.DELETE("/requests/cancel/:id", s.handleCancelRequest)
	authed.PATCH("/requests/return/:id", s.handleReturnRequest)
	authed.GET("/employee-stats", s.handleEmployeeStats)
	authed.GET("/hr-package-status", s.handlePackageStatus)
	authed.GET("/my-team", s.handleMyTeam)
	authed.PATCH("/payment-success", s.handleConfirmPayment)

	hr := authed.Group("/", s.requireHR())
	hr.POST("/assets", s.handleCreateAsset)
	hr.GET("/assets", s.handleListAssets)
	hr.GET("/all-requests", s.handleCompanyRequests)
	hr.PATCH("/requests/approve/:id", s.handleApproveRequest)
	hr.PATCH("/requests/reject/:id", s.handleRejectRequest)
	hr.GET("/my-employees", s.handleMyEmployees)
	hr.PATCH("/remove-employee/:email", s.handleRemoveEmployee)
	hr.GET("/available-employees", s.handleAvailableEmployees)
	hr.GET("/hr-stats", s.handleHRStats)
	hr.POST("/add-to-team", s.handleAddToTeam)
	hr.POST("/payment-checkout-session", s.handleStartCheckout)
	hr.GET("/payment-history", s.handlePaymentHistory)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		if err := s.health.Ping(c.Request.Context()); err != nil {
			s.logger.Error("health check failed",
				"event", "http_health_failed",
				"module", moduleName,
				"layer", "platform",
				"error", err.Error(),
			)
			c.JSON(http.StatusServiceUnavailable, httptransport.HealthResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, httptransport.HealthResponse{Status: "ok"})
}

func (s *Server) handleRegisterUser(c *gin.Context) {
	var req httptransport.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.RegisterUserHandler(c.Request.Context(), req)
	respond(c, resp, err)
}

func (s *Server) handleUserRole(c *gin.Context) {
	resp, err := s.assets.Handler.GetUserRoleHandler(c.Request.Context(), c.Param("email"))
	respond(c, resp, err)
}

func (s *Server) handleListPackages(c *gin.Context) {
	resp, err := s.assets.Handler.ListPackagesHandler(c.Request.Context())
	respond(c, resp, err)
}

func (s *Server) handleCreateAsset(c *gin.Context) {
	var req httptransport.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.CreateAssetHandler(c.Request.Context(), hrContext(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleListAssets(c *gin.Context) {
	var req httptransport.ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.ListAssetsHandler(c.Request.Context(), hrContext(c), req)
	respond(c, resp, err)
}

func (s *Server) handleAvailableAssets(c *gin.Context) {
	var req httptransport.AvailableAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.ListAvailableAssetsHandler(c.Request.Context(), req)
	respond(c, resp, err)
}

func (s *Server) handleSubmitRequest(c *gin.Context) {
	var req httptransport.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.SubmitRequestHandler(c.Request.Context(), callerEmail(c), req)
	respond(c, resp, err)
}

func (s *Server) handleCompanyRequests(c *gin.Context) {
	var req httptransport.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.ListCompanyRequestsHandler(c.Request.Context(), hrContext(c), req)
	respond(c, resp, err)
}

func (s *Server) handleMyRequests(c *gin.Context) {
	var req httptransport.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.ListMyRequestsHandler(c.Request.Context(), callerEmail(c), req)
	respond(c, resp, err)
}

func (s *Server) handleApproveRequest(c *gin.Context) {
	resp, err := s.assets.Handler.ApproveRequestHandler(c.Request.Context(), hrContext(c), c.Param("id"))
	respond(c, resp, err)
}

func (s *Server) handleRejectRequest(c *gin.Context) {
	resp, err := s.assets.Handler.RejectRequestHandler(c.Request.Context(), hrContext(c), c.Param("id"))
	respond(c, resp, err)
}

func (s *Server) handleCancelRequest(c *gin.Context) {
	resp, err := s.assets.Handler.CancelRequestHandler(c.Request.Context(), callerEmail(c), c.Param("id"))
	respond(c, resp, err)
}

func (s *Server) handleReturnRequest(c *gin.Context) {
	resp, err := s.assets.Handler.ReturnRequestHandler(c.Request.Context(), callerEmail(c), c.Param("id"))
	respond(c, resp, err)
}

func (s *Server) handleEmployeeStats(c *gin.Context) {
	resp, err := s.assets.Handler.EmployeeStatsHandler(c.Request.Context(), callerEmail(c))
	respond(c, resp, err)
}

func (s *Server) handleHRStats(c *gin.Context) {
	resp, err := s.assets.Handler.HRStatsHandler(c.Request.Context(), hrContext(c))
	respond(c, resp, err)
}

func (s *Server) handleMyEmployees(c *gin.Context) {
	resp, err := s.assets.Handler.MyEmployeesHandler(c.Request.Context(), hrContext(c))
	respond(c, resp, err)
}

func (s *Server) handleAvailableEmployees(c *gin.Context) {
	resp, err := s.assets.Handler.AvailableEmployeesHandler(c.Request.Context())
	respond(c, resp, err)
}

func (s *Server) handleMyTeam(c *gin.Context) {
	resp, err := s.assets.Handler.MyTeamHandler(c.Request.Context(), callerEmail(c))
	respond(c, resp, err)
}

func (s *Server) handlePackageStatus(c *gin.Context) {
	resp, err := s.assets.Handler.PackageStatusHandler(c.Request.Context(), callerEmail(c))
	respond(c, resp, err)
}

func (s *Server) handleAddToTeam(c *gin.Context) {
	var req httptransport.AddToTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.AddToTeamHandler(c.Request.Context(), hrContext(c), req)
	respond(c, resp, err)
}

func (s *Server) handleRemoveEmployee(c *gin.Context) {
	resp, err := s.assets.Handler.RemoveEmployeeHandler(c.Request.Context(), hrContext(c), c.Param("email"))
	respond(c, resp, err)
}

func (s *Server) handleStartCheckout(c *gin.Context) {
	var req httptransport.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.StartCheckoutHandler(c.Request.Context(), hrContext(c), req)
	respond(c, resp, err)
}

func (s *Server) handleConfirmPayment(c *gin.Context) {
	var req httptransport.ConfirmPaymentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	resp, err := s.assets.Handler.ConfirmPaymentHandler(c.Request.Context(), req)
	respond(c, resp, err)
}

func (s *Server) handlePaymentHistory(c *gin.Context) {
	resp, err := s.assets.Handler.PaymentHistoryHandler(c.Request.Context(), hrContext(c))
	respond(c, resp, err)
}

func respond(c *gin.Context, payload any, err error) {
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
