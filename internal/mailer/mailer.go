package mailer

import "context"

// Message is one outbound email with an optional single attachment.
type Message struct {
	From               string
	To                 string
	Subject            string
	Text               string
	AttachmentName     string
	AttachmentContent  []byte
	AttachmentMimeType string
}

// Sender delivers a message exactly once; no retry, no queuing.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
