package message

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

var repoTracer = otel.Tracer("github.com/foliohq/folio/repository/message")

// Repository stores contact-form messages. Messages are append-only.
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

// Create persists a new message.
func (r *Repository) Create(ctx context.Context, message *entity.Message) error {
	if message == nil {
		return errors.New("nil message")
	}
	ctx, span := repoTracer.Start(ctx, "MessageRepository.Create")
	defer span.End()

	_, err := r.writer.NewInsert().Model(message).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// List returns all messages, newest first.
func (r *Repository) List(ctx context.Context) ([]entity.Message, error) {
	ctx, span := repoTracer.Start(ctx, "MessageRepository.List")
	defer span.End()

	var messages []entity.Message
	err := r.reader.NewSelect().Model(&messages).Order("created_at DESC").Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return messages, nil
}
