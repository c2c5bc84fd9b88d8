package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lendcircle/internal/config"
	"lendcircle/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	profileHandler *handler.LoanProfileHandler,
	txnHandler *handler.TransactionHandler,
	updateHandler *handler.LoanUpdateHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Browsing loan profiles needs no account.
	api.GET("/loan-profiles", profileHandler.ListLoanProfiles)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
	secured.PATCH("/me", userHandler.UpdateMe)

	// User registry
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)

	// Loan profiles
	secured.POST("/loan-profiles", profileHandler.CreateLoanProfile)
	secured.GET("/loan-profiles/:id", profileHandler.GetLoanProfile)
	secured.PATCH("/loan-profiles/:id/status", profileHandler.SetStatus)

	// Funding ledger
	secured.POST("/transactions", txnHandler.RecordTransaction)
	secured.PATCH("/transactions/:id/status", txnHandler.UpdateStatus)
	secured.DELETE("/transactions/:id", txnHandler.DeleteTransaction)
	secured.GET("/loan-profiles/:id/transactions", txnHandler.ListByLoanProfile)

	// Loan update log
	secured.POST("/loan-profiles/:id/updates", updateHandler.AddUpdate)
	secured.GET("/loan-profiles/:id/updates", updateHandler.ListUpdates)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
