package proposal

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/dto"
	"github.com/foliohq/folio/internal/presentation/http/response"
	service "github.com/foliohq/folio/internal/service/proposal"
	"github.com/foliohq/folio/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/foliohq/folio/transport/http/proposal")

// Handler exposes the proposal generation endpoint over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a proposal Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.POST("/api/ai/generate", h.generate)
}

func (h *Handler) generate(c echo.Context) error {
	b := response.New(c)

	var payload dto.GenerateProposalRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "proposal.generate", trace.WithAttributes(
		attribute.String("proposal.project_name", payload.ProjectName),
	))
	defer span.End()

	text, err := h.svc.Generate(ctx, service.GenerateInput{
		ProjectName: payload.ProjectName,
		Description: payload.Description,
		Budget:      payload.Budget,
		UserEmail:   payload.UserEmail,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.GenerateProposalResponse{Proposal: text}).Build()
}
