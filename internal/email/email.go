package email

import (
	"context"

	"tripdesk/internal/kafka"
	"tripdesk/internal/logger"
)

// Sender is the delivery boundary. Real delivery is out of scope; the stub
// logs what would have been sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.EnquiryEvent) error {
	logger.Log.Info().
		Str("to", event.Email).
		Str("type", event.Type).
		Str("enquiry_id", event.EnquiryID).
		Str("stage", event.Stage).
		Msg("send notification email")
	return nil
}
