package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	"github.com/ironclub/gym-server/pkg/logger"
)

// Client is the club's outgoing mail client.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendMembershipExpiring mails the renewal reminder inside the expiring
// window.
func (c *Client) SendMembershipExpiring(to, name, expiryDate string) {
	body := fmt.Sprintf("Hola %s,\n\nTu membresía vence el %s. Acércate a recepción o renueva en línea para no perder tu cupo.\n\nIron Club", name, expiryDate)
	c.send(to, "Tu membresía está por vencer", body)
}

// SendPaymentReceipt mails the receipt for a registered payment.
func (c *Client) SendPaymentReceipt(to, name, concept string, amount int) {
	body := fmt.Sprintf("Hola %s,\n\nRegistramos tu pago: %s por $%d.\n\nIron Club", name, concept, amount)
	c.send(to, "Pago registrado", body)
}

func (c *Client) send(to, subject, body string) {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")
	messageID := generateMessageID(domain)

	msg.SetHeader("Message-ID", messageID)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Error(err)
		return
	}

	logger.Log.Infof("email %q successfully sent", subject)
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
