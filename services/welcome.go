package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"waterme/config"
)

type Mailer struct {
	apiKey string
	from   string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{apiKey: cfg.SendGridAPIKey, from: cfg.WelcomeEmailFrom}
}

// SendWelcome mails a short greeting after registration. Best effort: it is
// called in a goroutine and must never crash or block the request path.
func (m *Mailer) SendWelcome(name, email string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("SendWelcome panic recovered: %v\n", r)
		}
	}()

	if m.apiKey == "" || m.from == "" {
		fmt.Println("Missing SendGrid config, skipping welcome email")
		return
	}

	subject := "Welcome to Water Me"
	body := fmt.Sprintf(`Hi %s,

Your Water Me account is ready. Add your plants in the app and we'll keep
track of their watering schedule for you.

Happy growing!`, name)

	from := mail.NewEmail("Water Me", m.from)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending welcome email: %v\n", err)
	} else {
		fmt.Printf("Welcome email sent. Status Code: %d\n", response.StatusCode)
	}
}
