package project

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/dto"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/presentation/http/response"
	service "github.com/foliohq/folio/internal/service/catalog"
	"github.com/foliohq/folio/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/foliohq/folio/transport/http/project")

// Handler exposes the project catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a project Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/projects")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "projects.list")
	defer span.End()

	projects, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toDTO(&projects[i]))
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.ProjectRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "projects.create", trace.WithAttributes(
		attribute.String("project.title", payload.Title),
	))
	defer span.End()

	project := fromRequest(payload)
	if err := h.svc.Create(ctx, project); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(project)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	var payload dto.ProjectRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "projects.update", trace.WithAttributes(
		attribute.Int64("project.id", id),
	))
	defer span.End()

	project := fromRequest(payload)
	project.ID = id
	updated, err := h.svc.Update(ctx, project)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toDTO(updated)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "projects.delete", trace.WithAttributes(
		attribute.Int64("project.id", id),
	))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(map[string]string{"message": "project deleted"}).Build()
}

func fromRequest(payload dto.ProjectRequest) *entity.Project {
	return &entity.Project{
		Title:       payload.Title,
		Description: payload.Description,
		Thumbnail:   payload.Thumbnail,
		GithubURL:   payload.Github,
		DemoURL:     payload.Demo,
		Tags:        payload.Tags,
		Features:    payload.Features,
		IsFeatured:  payload.IsFeatured,
	}
}

func toDTO(project *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Thumbnail:   project.Thumbnail,
		Github:      project.GithubURL,
		Demo:        project.DemoURL,
		Tags:        project.Tags,
		Features:    project.Features,
		IsFeatured:  project.IsFeatured,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
