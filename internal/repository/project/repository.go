package project

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

var repoTracer = otel.Tracer("github.com/foliohq/folio/repository/project")

// ErrNotFound is returned when a project is missing.
var ErrNotFound = errors.New("project not found")

// Repository encapsulates read/write access for portfolio projects.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Create persists a new project.
func (r *Repository) Create(ctx context.Context, project *entity.Project) error {
	if project == nil {
		return errors.New("nil project")
	}
	ctx, span := repoTracer.Start(ctx, "ProjectRepository.Create", trace.WithAttributes(attribute.String("project.title", project.Title)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(project).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// List returns all projects, newest first.
func (r *Repository) List(ctx context.Context) ([]entity.Project, error) {
	ctx, span := repoTracer.Start(ctx, "ProjectRepository.List")
	defer span.End()

	var projects []entity.Project
	err := r.reader.NewSelect().Model(&projects).Order("created_at DESC").Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return projects, nil
}

// Update rewrites the mutable fields of the identified project.
func (r *Repository) Update(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if project == nil {
		return nil, errors.New("nil project")
	}
	ctx, span := repoTracer.Start(ctx, "ProjectRepository.Update", trace.WithAttributes(attribute.Int64("project.id", project.ID)))
	defer span.End()

	project.UpdatedAt = time.Now().UTC()
	updated := new(entity.Project)
	_, err := r.writer.NewUpdate().
		Model(project).
		Column("title", "description", "thumbnail", "github_url", "demo_url", "tags", "features", "is_featured", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx, updated)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, err
	}
	return updated, nil
}

// Delete removes a project by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, span := repoTracer.Start(ctx, "ProjectRepository.Delete", trace.WithAttributes(attribute.Int64("project.id", id)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Project)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrNotFound
	}
	return nil
}
