package service

import (
	"fmt"
	"net/url"

	"github.com/ibeloyar/shopfront/internal/model"
)

const upiCurrency = "INR"

// upiLink builds a upi://pay deep-link for a payment app to consume. The link
// is generated optimistically and never verified against an actual payment.
func (s *Service) upiLink(order model.Order) string {
	params := url.Values{}
	params.Set("pa", s.merchantVPA)
	params.Set("pn", s.merchantName)
	params.Set("am", fmt.Sprintf("%.2f", order.Total))
	params.Set("tn", fmt.Sprintf("Order %s", order.ID))
	params.Set("cu", upiCurrency)

	return "upi://pay?" + params.Encode()
}
