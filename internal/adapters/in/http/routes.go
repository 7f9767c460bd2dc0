package http

import (
	"net/http"

	"pod/internal/adapters/in/http/auth"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Banner is the body of GET /api.
type Banner struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterHandlers mounts every POD route on e. Everything under /api except
// the banner and login requires a bearer token.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("", s.GetBanner)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", auth.Authenticate(s.tokens))
	authed.GET("/auth/me", s.GetMe)
	authed.POST("/auth/users", s.CreateUser, auth.Require(user.ManageUsers))

	coordinator := authed.Group("/coordinator")
	coordinator.GET("/messengers", s.ListMessengers, auth.Require(user.ManageMessengers))
	coordinator.POST("/messengers", s.CreateMessenger, auth.Require(user.ManageMessengers))
	coordinator.PUT("/messengers/:id", s.UpdateMessenger, auth.Require(user.ManageMessengers))
	coordinator.DELETE("/messengers/:id", s.DeleteMessenger, auth.Require(user.ManageMessengers))
	coordinator.POST("/bills", s.CreateBills, auth.Require(user.ManageBills))
	coordinator.GET("/bills", s.ListBills, auth.Require(user.ManageBills))
	coordinator.POST("/assign-bills", s.AssignBills, auth.Require(user.ManageBills))
	coordinator.PUT("/deliveries/:id/verify", s.VerifyDelivery, auth.Require(user.VerifyDeliveries))
	coordinator.PUT("/deliveries/:id/reassign", s.ReassignDelivery, auth.Require(user.VerifyDeliveries))
	coordinator.GET("/tracking", s.GetTracking, auth.Require(user.VerifyDeliveries))

	messenger := authed.Group("/messenger", auth.Require(user.PerformDeliveries))
	messenger.GET("/routes", s.GetRoutes)
	messenger.GET("/deliveries", s.ListMyDeliveries)
	messenger.GET("/deliveries/:id", s.GetDelivery)
	messenger.PUT("/deliveries/:id/status", s.UpdateDeliveryStatus)
	messenger.POST("/deliveries/:id/proof", s.AttachProof)

	authed.GET("/deliveries", s.ListDeliveries, auth.Require(user.ViewDeliveries))
	authed.GET("/deliveries/status/:status", s.ListDeliveriesByStatus, auth.Require(user.ViewDeliveries))

	authed.GET("/bills/inventory", s.GetBillInventory, auth.Require(user.ManageBills))
	authed.GET("/bills/by-route/:route", s.ListBillsByRoute, auth.Require(user.ViewDeliveries))

	authed.POST("/reports/dsr", s.GenerateDailyReport, auth.Require(user.GenerateReports))
	authed.GET("/reports", s.ListReports, auth.Require(user.GenerateReports))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetBanner handles GET /api.
func (s *Server) GetBanner(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Banner{
		Message: "POD System Backend API",
		Status:  "running",
		Version: "1.0.0",
	})
}

func bindPathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func bindPathString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func principal(ctx echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return auth.Principal{}, auth.ErrMissingToken
	}
	return p, nil
}
