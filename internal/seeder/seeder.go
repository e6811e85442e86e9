package seeder

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/database"
	"github.com/foliohq/folio/internal/entity"
)

// Module wires the seeder for CLI use.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// Projects seeds a starter set of portfolio entries if they are missing.
func (s *Seeder) Projects(ctx context.Context) error {
	now := time.Now().UTC()
	samples := []entity.Project{
		{
			Title:       "Realtime Chat Platform",
			Description: "WebSocket chat with rooms, presence and message history.",
			Thumbnail:   "https://placehold.co/600x400",
			GithubURL:   "https://github.com/foliohq/chat-demo",
			DemoURL:     "https://chat.foliohq.dev",
			Tags:        []string{"go", "websocket", "redis"},
			Features:    []string{"Rooms", "Presence", "History"},
			IsFeatured:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Invoice Generator",
			Description: "PDF invoicing tool with templated line items and tax rules.",
			Thumbnail:   "https://placehold.co/600x400",
			GithubURL:   "https://github.com/foliohq/invoicer",
			Tags:        []string{"go", "pdf"},
			Features:    []string{"Templates", "Tax rules"},
			IsFeatured:  false,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, sample := range samples {
		project := sample
		_, err := s.db.NewInsert().Model(&project).
			On("CONFLICT (title) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded projects", zap.Int("count", len(samples)))
	}
	return nil
}
