package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendNGOApproval(toEmail, ngoName string) error
	SendCampaignApproval(toEmail, campaignTitle string) error
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

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendNGOApproval(toEmail, ngoName string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome aboard, %s!</h2>
			<p>Your NGO account has been approved. You can now create fundraising
			campaigns and post updates to your supporters.</p>
		</div>
	`, ngoName)

	return s.send(toEmail, "Your NGO account has been approved", body)
}

func (s *emailService) SendCampaignApproval(toEmail, campaignTitle string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Campaign approved</h2>
			<p>Your campaign <strong>%s</strong> has been approved and is now
			visible to donors.</p>
		</div>
	`, campaignTitle)

	return s.send(toEmail, "Your campaign has been approved", body)
}
