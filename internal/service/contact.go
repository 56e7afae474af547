package service

import (
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/mailer"
)

// ContactService forwards contact-form submissions to the configured
// recipient. Validation happens at the API boundary before any send is
// attempted.
type ContactService struct {
	mailer    mailer.Mailer
	recipient string
}

func NewContactService(m mailer.Mailer, recipient string) *ContactService {
	return &ContactService{
		mailer:    m,
		recipient: recipient,
	}
}

func (s *ContactService) SubmitContact(name, email, subject, message string) error {
	body := fmt.Sprintf("From: %v <%v>\n\n%v", name, email, message)
	if err := s.mailer.Send(s.recipient, subject, body); err != nil {
		return fmt.Errorf("s.mailer.Send -> %w", err)
	}

	return nil
}
