package contact

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/internal/notification"
	repo "github.com/foliohq/folio/internal/repository/message"
	"github.com/foliohq/folio/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/foliohq/folio/service/contact")

// messageRepository is the persistence surface the service needs.
type messageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	List(ctx context.Context) ([]entity.Message, error)
}

// Service handles contact-form submissions and their dual email dispatch.
type Service struct {
	repo   messageRepository
	mailer notification.Mailer
	logger *zap.Logger
	mail   config.Mail
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Mailer     notification.Mailer
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return newService(p.Repository, p.Mailer, p.Config.Mail, p.Logger)
}

func newService(repository messageRepository, mailer notification.Mailer, mail config.Mail, logger *zap.Logger) *Service {
	return &Service{
		repo:   repository,
		mailer: mailer,
		logger: logger,
		mail:   mail,
	}
}

// SubmitInput is a contact-form submission. Subject is optional.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit persists the message, then attempts the admin notification and the
// customer acknowledgment. Mail failures are logged and never surfaced: the
// submission outcome must not depend on delivery.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*entity.Message, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, errorbank.BadRequest("name, email and message are required")
	}

	ctx, span := serviceTracer.Start(ctx, "ContactService.Submit")
	defer span.End()

	message := &entity.Message{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to store message", errorbank.WithCause(err))
	}

	s.notify(ctx, in)

	return message, nil
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]entity.Message, error) {
	ctx, span := serviceTracer.Start(ctx, "ContactService.List")
	defer span.End()

	messages, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load messages", errorbank.WithCause(err))
	}
	return messages, nil
}

func (s *Service) notify(ctx context.Context, in SubmitInput) {
	subject := in.Subject
	if subject == "" {
		subject = "Contact Form"
	}

	if s.mail.AdminAddr != "" {
		adminText := "From: " + in.Name + " (" + in.Email + ")\n\nMessage: " + in.Message
		adminHTML := notification.ContactNotificationHTML(in.Name, in.Email, in.Message)
		if err := s.mailer.Send(ctx, s.mail.AdminAddr, "New Message: "+subject, adminText, adminHTML); err != nil {
			s.logger.Error("contact admin notification failed", zap.Error(err))
		}
	}

	ackSubject := "Message Received - " + s.mail.BrandName
	ackText := notification.ContactAcknowledgmentText(s.mail.BrandName, in.Name)
	if err := s.mailer.Send(ctx, in.Email, ackSubject, ackText, ""); err != nil {
		s.logger.Error("contact acknowledgment failed", zap.Error(err))
	}
}
