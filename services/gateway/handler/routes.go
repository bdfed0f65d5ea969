package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/services/gateway/handler/http"
)

// Handler coordinates the gateway's HTTP handlers
type Handler struct {
	authHandler     *http.AuthHandler
	userHandler     *http.UserHandler
	adminHandler    *http.AdminHandler
	voyageHandler   *http.VoyageHandler
	paymentsHandler *http.PaymentsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	adminHandler *http.AdminHandler,
	voyageHandler *http.VoyageHandler,
	paymentsHandler *http.PaymentsHandler,
) *Handler {
	return &Handler{
		authHandler:     authHandler,
		userHandler:     userHandler,
		adminHandler:    adminHandler,
		voyageHandler:   voyageHandler,
		paymentsHandler: paymentsHandler,
	}
}

// RegisterRoutes registers the full gateway surface. Authentication is not
// a middleware concern here: every protected handler hands its bearer token
// to the usecase, which validates it against the users service per request.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/login", h.authHandler.Login)
	e.POST("/login/google", h.authHandler.LoginGoogle)
	e.POST("/signup", h.authHandler.SignUp)

	// Profile routes (any role)
	userGroup := e.Group("/users")
	userGroup.POST("", h.userHandler.CreateUser)
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PUT("/:id", h.userHandler.UpdateUser)
	userGroup.DELETE("/:id", h.userHandler.DeleteUser)

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.POST("/register/:id", h.adminHandler.RegisterAdmin)
	adminGroup.POST("/block/:id", h.adminHandler.BlockUser)
	adminGroup.POST("/unblock/:id", h.adminHandler.UnblockUser)
	adminGroup.GET("/users", h.adminHandler.GetAllUsers)
	adminGroup.GET("/constants", h.adminHandler.GetFareConstants)
	adminGroup.PUT("/constants", h.adminHandler.UpdateFareConstants)

	metricsGroup := e.Group("/metrics")
	metricsGroup.GET("/voyages", h.adminHandler.GetVoyageMetrics)
	metricsGroup.GET("/payments", h.adminHandler.GetPaymentMetrics)
	metricsGroup.GET("/users", h.adminHandler.GetUserMetrics)

	// Passenger routes
	passengerGroup := e.Group("/voyage/passenger")
	passengerGroup.POST("/search", h.voyageHandler.Search)
	passengerGroup.POST("/search/:driverId", h.voyageHandler.ConfirmDriver)
	passengerGroup.DELETE("/search", h.voyageHandler.CancelSearch)
	passengerGroup.DELETE("/voyage/:voyageId", h.voyageHandler.CancelVoyage)
	passengerGroup.POST("/vip/subscription", h.voyageHandler.SubscribePassengerVIP)
	passengerGroup.POST("/vip/unsubscription", h.voyageHandler.UnsubscribePassengerVIP)
	passengerGroup.POST("/review/:voyageId", h.voyageHandler.SubmitReview)
	passengerGroup.POST("/complaint/:voyageId", h.voyageHandler.SubmitComplaint)
	passengerGroup.GET("/last", h.voyageHandler.LastPassengerVoyage)

	// Driver routes
	driverGroup := e.Group("/voyage/driver")
	driverGroup.POST("/searching", h.voyageHandler.SetDriverSearching)
	driverGroup.POST("/offline", h.voyageHandler.SetDriverOffline)
	driverGroup.POST("/vip/subscription", h.voyageHandler.SubscribeDriverVIP)
	driverGroup.POST("/vip/unsubscription", h.voyageHandler.UnsubscribeDriverVIP)
	driverGroup.POST("/location", h.voyageHandler.UpdateDriverLocation)
	driverGroup.POST("/start/:voyageId", h.voyageHandler.StartVoyage)
	driverGroup.POST("/end/:voyageId", h.voyageHandler.FinishVoyage)
	driverGroup.GET("/last", h.voyageHandler.LastDriverVoyage)
	driverGroup.POST("/:voyageId/:accept", h.voyageHandler.AnswerSolicitation)

	// Voyage inspection and complaints listing
	e.GET("/voyage/info/:voyageId", h.voyageHandler.GetVoyageInfo)
	e.GET("/voyage/complaints", h.adminHandler.GetComplaints)

	// Wallet routes
	paymentsGroup := e.Group("/payments")
	paymentsGroup.GET("/balance", h.paymentsHandler.GetBalance)
	paymentsGroup.POST("/wallet", h.paymentsHandler.CreateWallet)
	paymentsGroup.POST("/withdraw", h.paymentsHandler.Withdraw)
	paymentsGroup.GET("/driver", h.paymentsHandler.GetDriverPayments)
}
