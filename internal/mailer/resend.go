package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends mail through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender constructs a ResendSender with the given API key.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send delivers the message via Resend.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	}
	if len(msg.AttachmentContent) > 0 {
		params.Attachments = []*resend.Attachment{
			{
				Filename:    msg.AttachmentName,
				Content:     msg.AttachmentContent,
				ContentType: msg.AttachmentMimeType,
			},
		}
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

var _ Sender = (*ResendSender)(nil)
