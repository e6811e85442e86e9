package message

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/foliohq/folio/internal/dto"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/presentation/http/response"
	service "github.com/foliohq/folio/internal/service/contact"
	"github.com/foliohq/folio/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/foliohq/folio/transport/http/message")

// Handler exposes the contact endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a message Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.POST("/api/contact", h.submit)
	e.GET("/api/messages", h.list)
}

func (h *Handler) submit(c echo.Context) error {
	b := response.New(c)

	var payload dto.ContactRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "contact.submit")
	defer span.End()

	message, err := h.svc.Submit(ctx, service.SubmitInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(message)).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "messages.list")
	defer span.End()

	messages, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toDTO(&messages[i]))
	}
	return b.WithData(out).Build()
}

func toDTO(message *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Body,
		CreatedAt: message.CreatedAt,
	}
}
