package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"academy/backend/models"
)

type Message struct {
	To      []string
	From    string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers a message through an external provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ContactNotification renders the inbox notification for a contact form message.
func ContactNotification(inbox string, m models.ContactMessage) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New contact message</h2>")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(m.Name), html.EscapeString(m.Email))
	if m.Subject != "" {
		fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(m.Subject))
	}
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(m.Message), "\n", "<br>"))

	subject := "Contact form"
	if m.Subject != "" {
		subject += ": " + m.Subject
	}
	return Message{
		To:      []string{inbox},
		Subject: subject,
		HTML:    b.String(),
		ReplyTo: m.Email,
	}
}
