package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"frigate/config"
	"frigate/infras/otel"
	"frigate/shared/constant"
)

// Mailer delivers guest notifications. The only implementation writes the
// message to the log; no real mail leaves the process.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type logMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &logMailer{
		cfg:  cfg,
		otel: otl,
	}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()

	log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("Mock email sent")

	return nil
}
