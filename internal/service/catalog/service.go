package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/cache"
	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	repo "github.com/foliohq/folio/internal/repository/project"
	"github.com/foliohq/folio/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/foliohq/folio/service/catalog")

const listCacheKey = "projects:list"

// projectRepository is the persistence surface the service needs.
type projectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	List(ctx context.Context) ([]entity.Project, error)
	Update(ctx context.Context, project *entity.Project) (*entity.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Service manages the portfolio project catalog.
type Service struct {
	repo     projectRepository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return newService(p.Repository, p.Cache, p.Config.Cache.DefaultTTL, p.Logger)
}

func newService(repository projectRepository, store cache.Store, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     repository,
		cache:    store,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// List returns all projects newest first, consulting the cache first.
func (s *Service) List(ctx context.Context) ([]entity.Project, error) {
	ctx, span := serviceTracer.Start(ctx, "CatalogService.List")
	defer span.End()

	if projects, err := s.listFromCache(ctx); err == nil {
		return projects, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("projects cache read failed", zap.Error(err))
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load projects", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, projects); err != nil {
		s.logger.Warn("projects cache write failed", zap.Error(err))
	}

	return projects, nil
}

// Create persists a new project and invalidates the cached list.
func (s *Service) Create(ctx context.Context, project *entity.Project) error {
	if project == nil {
		return errorbank.BadRequest("project payload is required")
	}
	if project.Title == "" || project.Description == "" || project.Thumbnail == "" {
		return errorbank.BadRequest("title, description and thumbnail are required")
	}
	if project.CreatedAt.IsZero() {
		now := time.Now().UTC()
		project.CreatedAt = now
		project.UpdatedAt = now
	}

	ctx, span := serviceTracer.Start(ctx, "CatalogService.Create", trace.WithAttributes(attribute.String("project.title", project.Title)))
	defer span.End()

	if err := s.repo.Create(ctx, project); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create project", errorbank.WithCause(err))
	}

	s.invalidateCache(ctx)
	return nil
}

// Update rewrites an existing project and invalidates the cached list.
func (s *Service) Update(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if project == nil || project.ID <= 0 {
		return nil, errorbank.BadRequest("project id is required")
	}

	ctx, span := serviceTracer.Start(ctx, "CatalogService.Update", trace.WithAttributes(attribute.Int64("project.id", project.ID)))
	defer span.End()

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("project not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to update project", errorbank.WithCause(err))
	}

	s.invalidateCache(ctx)
	return updated, nil
}

// Delete removes a project and invalidates the cached list.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errorbank.BadRequest("project id is required")
	}

	ctx, span := serviceTracer.Start(ctx, "CatalogService.Delete", trace.WithAttributes(attribute.Int64("project.id", id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("project not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete project", errorbank.WithCause(err))
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *Service) listFromCache(ctx context.Context) ([]entity.Project, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	raw, err := s.cache.Get(ctx, listCacheKey)
	if err != nil {
		return nil, err
	}
	var projects []entity.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Service) storeInCache(ctx context.Context, projects []entity.Project) error {
	if s.cache == nil {
		return nil
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, listCacheKey, raw, s.cacheTTL)
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("projects cache invalidation failed", zap.Error(err))
	}
}
