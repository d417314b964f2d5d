package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCrisisAlert(toEmail, userEmail, riskLevel string, keywords []string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendCrisisAlert notifies an admin that a high-severity crisis was
// detected. The user's message body is deliberately NOT included; only the
// matched keywords and severity travel by email.
func (s *emailService) SendCrisisAlert(toEmail, userEmail, riskLevel string, keywords []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("[JoJo] Crisis alert - %s risk detected", strings.ToUpper(riskLevel)))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Crisis Alert</h2>
			<p>A <strong>%s</strong> risk message was detected for user <strong>%s</strong>.</p>
			<p>Matched phrases: %s</p>
			<p>The user has already received the crisis-safety response with hotline information. Please follow up per the escalation runbook.</p>
		</div>
	`, strings.ToUpper(riskLevel), userEmail, strings.Join(keywords, ", "))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send crisis alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Crisis alert sent to %s\n", toEmail)
	return nil
}
