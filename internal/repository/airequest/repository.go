package airequest

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

var repoTracer = otel.Tracer("github.com/foliohq/folio/repository/airequest")

// Repository archives proposal-generation calls. Append-only.
type Repository struct {
	writer *bun.DB
}

// NewRepository wires a repository backed by the primary connection.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer}
}

// Create persists a new AI request record.
func (r *Repository) Create(ctx context.Context, req *entity.AIRequest) error {
	if req == nil {
		return errors.New("nil ai request")
	}
	ctx, span := repoTracer.Start(ctx, "AIRequestRepository.Create")
	defer span.End()

	_, err := r.writer.NewInsert().Model(req).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
