// Package notify delivers best-effort order-created notifications. Callers
// dispatch without awaiting the outcome; a failed notification never affects
// the order itself.
package notify

import (
	"errors"

	"github.com/ibeloyar/shopfront/internal/model"
)

type Notifier interface {
	OrderCreated(order model.Order) error
}

// Multi fans an event out to every configured notifier and joins the errors,
// so one failing channel does not starve the others.
type Multi struct {
	notifiers []Notifier
}

func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) OrderCreated(order model.Order) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.OrderCreated(order); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
