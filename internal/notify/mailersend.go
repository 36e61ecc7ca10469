package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mailersend/mailersend-go"

	"github.com/luxenails/nail-booking-backend/internal/booking"
)

// MailerSendNotifier sends booking confirmations through the MailerSend API.
type MailerSendNotifier struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSendNotifier(apiKey, fromName, fromEmail string) *MailerSendNotifier {
	return &MailerSendNotifier{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
}

func (n *MailerSendNotifier) BookingConfirmation(ctx context.Context, b *booking.Booking) error {
	msg := n.client.Email.NewMessage()
	msg.SetFrom(n.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: b.FullName, Email: b.ClientEmail}})
	msg.SetSubject(confirmationSubject)
	msg.SetText(confirmationText(b))
	msg.SetHTML(confirmationHTML(b))

	res, err := n.client.Email.Send(ctx, msg)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
