package notify

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/ibeloyar/shopfront/internal/model"
)

// OrderCreatedEvent is the JSON payload POSTed to the configured webhook.
type OrderCreatedEvent struct {
	EventID string      `json:"eventId"`
	Type    string      `json:"type"`
	Order   model.Order `json:"order"`
}

const eventTypeOrderCreated = "order.created"

// Webhook POSTs order-created events to an external collaborator.
type Webhook struct {
	url    string
	client *resty.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: resty.New(),
	}
}

func (w *Webhook) OrderCreated(order model.Order) error {
	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(OrderCreatedEvent{
			EventID: uuid.NewString(),
			Type:    eventTypeOrderCreated,
			Order:   order,
		}).
		Post(w.url)
	if err != nil {
		return err
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook request status: %d", resp.StatusCode())
	}

	return nil
}
