package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/luxenails/nail-booking-backend/internal/booking"
)

// SMTPNotifier delivers confirmations via plain SMTP. Aimed at local dev
// against Mailpit on 1025 (no auth, no TLS) but also speaks PLAIN auth for a
// staging relay.
type SMTPNotifier struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

func NewSMTPNotifier(host string, port int, from, user, pass string) *SMTPNotifier {
	return &SMTPNotifier{
		Host: strings.TrimSpace(host),
		Port: port,
		From: strings.TrimSpace(from),
		User: strings.TrimSpace(user),
		Pass: strings.TrimSpace(pass),
	}
}

func (n *SMTPNotifier) BookingConfirmation(ctx context.Context, b *booking.Booking) error {
	to := strings.TrimSpace(b.ClientEmail)
	if to == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "alt-boundary"
	fmt.Fprintf(&buf, "From: %s\r\n", n.From)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", confirmationSubject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", confirmationText(b))

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", confirmationHTML(b))

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)

	var auth smtp.Auth
	if n.User != "" {
		auth = smtp.PlainAuth("", n.User, n.Pass, n.Host)
	}

	return smtp.SendMail(addr, auth, n.From, []string{to}, buf.Bytes())
}
