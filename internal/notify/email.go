package notify

import (
	"fmt"
	"strings"

	"github.com/ibeloyar/shopfront/internal/model"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	AdminEmail string
}

// Email sends a plain-text order summary to the shop admin over SMTP. There
// is no retry and no delivery guarantee.
type Email struct {
	cfg EmailConfig
}

func NewEmail(cfg EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) OrderCreated(order model.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.User)
	m.SetHeader("To", e.cfg.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New order %s", order.ID))
	m.SetBody("text/plain", orderMailBody(order))

	d := gomail.NewDialer(e.cfg.Host, e.cfg.Port, e.cfg.User, e.cfg.Password)

	return d.DialAndSend(m)
}

func orderMailBody(order model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s\n", order.ID)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	fmt.Fprintf(&b, "Payment method: %s\n", order.PaymentMethod)
	fmt.Fprintf(&b, "Total: %.2f\n", order.Total)
	fmt.Fprintf(&b, "Items: %d\n", len(order.Items))

	if name, ok := order.Customer["name"]; ok {
		fmt.Fprintf(&b, "Customer: %v\n", name)
	}

	return b.String()
}
