package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
	"github.com/foliohq/folio/internal/entity"
	"github.com/foliohq/folio/pkg/errorbank"
)

type stubRepo struct {
	created   []*entity.Message
	createErr error
	messages  []entity.Message
}

func (s *stubRepo) Create(_ context.Context, message *entity.Message) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, message)
	return nil
}

func (s *stubRepo) List(_ context.Context) ([]entity.Message, error) {
	return s.messages, nil
}

type sentMail struct {
	to      string
	subject string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, _, _ string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return m.err
}

func (m *recordingMailer) Enabled() bool { return true }

func newTestService(r *stubRepo, m *recordingMailer) *Service {
	mail := config.Mail{
		Host:      "smtp.test",
		From:      "studio@test",
		AdminAddr: "admin@test",
		BrandName: "Folio Studio",
	}
	return newService(r, m, mail, zap.NewNop())
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Logo work",
		Message: "Can you design a logo?",
	}
}

func TestSubmitPersistsAndSendsBothMails(t *testing.T) {
	r := &stubRepo{}
	m := &recordingMailer{}
	svc := newTestService(r, m)

	message, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "Can you design a logo?", message.Body)

	require.Len(t, r.created, 1)
	require.Len(t, m.sent, 2)
	assert.Equal(t, "admin@test", m.sent[0].to)
	assert.Equal(t, "New Message: Logo work", m.sent[0].subject)
	assert.Equal(t, "ravi@example.com", m.sent[1].to)
	assert.Equal(t, "Message Received - Folio Studio", m.sent[1].subject)
}

func TestSubmitDefaultsSubject(t *testing.T) {
	r := &stubRepo{}
	m := &recordingMailer{}
	svc := newTestService(r, m)

	in := validInput()
	in.Subject = ""
	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, m.sent, 2)
	assert.Equal(t, "New Message: Contact Form", m.sent[0].subject)
}

func TestSubmitSucceedsWhenMailFails(t *testing.T) {
	r := &stubRepo{}
	m := &recordingMailer{err: errors.New("smtp down")}
	svc := newTestService(r, m)

	message, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, message)
	// Both sends were still attempted.
	assert.Len(t, m.sent, 2)
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(&stubRepo{}, &recordingMailer{})

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"missing name", func(in *SubmitInput) { in.Name = "" }},
		{"missing email", func(in *SubmitInput) { in.Email = "" }},
		{"missing message", func(in *SubmitInput) { in.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			var appErr *errorbank.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
		})
	}
}

func TestSubmitRepositoryError(t *testing.T) {
	r := &stubRepo{createErr: errors.New("disk full")}
	m := &recordingMailer{}
	svc := newTestService(r, m)

	_, err := svc.Submit(context.Background(), validInput())

	var appErr *errorbank.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errorbank.KindInternal, appErr.Kind())
	// No mail goes out for a submission that was never stored.
	assert.Empty(t, m.sent)
}

func TestListReturnsMessages(t *testing.T) {
	r := &stubRepo{messages: []entity.Message{{ID: 2}, {ID: 1}}}
	svc := newTestService(r, &recordingMailer{})

	messages, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
