package proposal

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/ai"
	"github.com/foliohq/folio/internal/entity"
	repo "github.com/foliohq/folio/internal/repository/airequest"
	"github.com/foliohq/folio/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/foliohq/folio/service/proposal")

// FallbackMessage is returned in place of a completion when the provider
// call fails. The response still carries HTTP success; callers cannot tell a
// provider outage apart from a normal response by status code.
const FallbackMessage = "Error generating proposal. Please try again later."

// aiRequestRepository is the persistence surface the service needs.
type aiRequestRepository interface {
	Create(ctx context.Context, req *entity.AIRequest) error
}

// Service turns client project parameters into a vendor-generated proposal
// and archives the result.
type Service struct {
	repo   aiRequestRepository
	client ai.Client
	logger *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Client     ai.Client
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return newService(p.Repository, p.Client, p.Logger)
}

func newService(repository aiRequestRepository, client ai.Client, logger *zap.Logger) *Service {
	return &Service{
		repo:   repository,
		client: client,
		logger: logger,
	}
}

// GenerateInput carries the free-text project parameters.
type GenerateInput struct {
	ProjectName string
	Description string
	Budget      string
	UserEmail   string
}

// Generate builds the instructional prompt, requests a completion, persists
// the archive record and returns the proposal text. Provider failures yield
// the fixed fallback text, not an error.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (string, error) {
	ctx, span := serviceTracer.Start(ctx, "ProposalService.Generate", trace.WithAttributes(
		attribute.String("proposal.project_name", in.ProjectName),
	))
	defer span.End()

	result, err := s.client.GenerateContent(ctx, buildPrompt(in))
	if err != nil {
		s.logger.Error("proposal generation failed", zap.String("project_name", in.ProjectName), zap.Error(err))
		span.RecordError(err)
		result = FallbackMessage
	}

	now := time.Now().UTC()
	record := &entity.AIRequest{
		ProjectName:       in.ProjectName,
		Description:       in.Description,
		Budget:            in.Budget,
		UserEmail:         in.UserEmail,
		GeneratedProposal: result,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return "", errorbank.Internal("failed to archive proposal request", errorbank.WithCause(err))
	}

	return result, nil
}

func buildPrompt(in GenerateInput) string {
	return fmt.Sprintf(`I am a developer. A client wants to work on a project:
Project Name: %s
Description: %s
Budget: %s

Please generate:
1. A professional proposal.
2. A suggested modern tech stack.
3. An estimated timeline.

Provide the response in a structured text format.`, in.ProjectName, in.Description, in.Budget)
}
