package notification

import (
	"fmt"
	"net/smtp"

	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/logger"
)

// SMTPNotifier sends notifications as email through an smtp relay
type SMTPNotifier struct {
	conf config.SMTPConfig
	log  logger.Logger
}

// NewSMTPNotifier returns a new instance of SMTPNotifier
func NewSMTPNotifier(conf config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		conf: conf,
		log:  logger.New(),
	}
}

// Send delivers the message to recipient via the configured smtp server
func (n *SMTPNotifier) Send(recipient, subject, message string) error {
	addr := fmt.Sprintf("%s:%d", n.conf.Server, n.conf.Port)

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.conf.User,
		recipient,
		subject,
		message,
	)

	auth := smtp.PlainAuth("", n.conf.User, n.conf.Password, n.conf.Server)

	err := smtp.SendMail(addr, auth, n.conf.User, []string{recipient}, []byte(body))

	if err != nil {
		n.log.Error().Err(err).Str("recipient", recipient).Msg("failed to send email")
		return err
	}

	n.log.Info().Str("recipient", recipient).Msg("email sent")

	return nil
}
