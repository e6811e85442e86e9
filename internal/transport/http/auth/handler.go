package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/dto"
	"github.com/foliohq/folio/internal/presentation/http/response"
	service "github.com/foliohq/folio/internal/service/auth"
	"github.com/foliohq/folio/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/foliohq/folio/transport/http/auth")

// Handler exposes the admin authentication endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an auth Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/auth")
	g.POST("/login", h.login)
	g.POST("/register-admin", h.registerAdmin)
}

func (h *Handler) login(c echo.Context) error {
	b := response.New(c)

	var payload dto.LoginRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.login", trace.WithAttributes(
		attribute.String("user.username", payload.Username),
	))
	defer span.End()

	result, err := h.svc.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.LoginResponse{
		Token: result.Token,
		User: dto.UserResponse{
			Username: result.User.Username,
			Role:     result.User.Role,
		},
	}).Build()
}

func (h *Handler) registerAdmin(c echo.Context) error {
	b := response.New(c)

	var payload dto.RegisterAdminRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.register_admin", trace.WithAttributes(
		attribute.String("user.username", payload.Username),
	))
	defer span.End()

	user, err := h.svc.RegisterAdmin(ctx, payload.Username, payload.Password)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.UserResponse{
		Username: user.Username,
		Role:     user.Role,
	}).Build()
}
