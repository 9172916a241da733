package service

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ibeloyar/shopfront/internal/model"
	"github.com/ibeloyar/shopfront/pgk/identifier"
	"go.uber.org/zap"
)

const (
	orderIDPrefix  = "ORD_"
	reviewIDPrefix = "REV_"
)

type StorageRepo interface {
	ReadOrders() ([]model.Order, error)
	WriteOrders(orders []model.Order) error
	ReadReviews() ([]model.Review, error)
	WriteReviews(reviews []model.Review) error
}

type Notifier interface {
	OrderCreated(order model.Order) error
}

type Service struct {
	storage  StorageRepo
	notifier Notifier
	validate *validator.Validate
	lg       *zap.SugaredLogger

	merchantVPA  string
	merchantName string

	// The storage contract is read-modify-write over a whole collection, so
	// each collection gets a serialization boundary to avoid lost updates
	// under concurrent requests.
	ordersMu  sync.Mutex
	reviewsMu sync.Mutex
}

func New(s StorageRepo, n Notifier, merchantVPA, merchantName string, lg *zap.SugaredLogger) *Service {
	return &Service{
		storage:  s,
		notifier: n,
		validate: validator.New(),
		lg:       lg,

		merchantVPA:  merchantVPA,
		merchantName: merchantName,
	}
}

func (s *Service) CreateOrder(input model.CreateOrderDTO) (*model.CreateOrderResult, *model.APIError) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrNoItemsMessage,
		}
	}

	total := float64(input.Total)
	if total < 0 {
		total = 0
	}

	customer := input.Customer
	if customer == nil {
		customer = map[string]any{}
	}

	order := model.Order{
		ID:            identifier.Generate(orderIDPrefix),
		Items:         input.Items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        initialStatus(input.PaymentMethod),
		CreatedAt:     time.Now().UnixMilli(),
		Customer:      customer,
	}

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := s.storage.ReadOrders()
	if err != nil {
		s.lg.Errorf("reading orders failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	orders = append([]model.Order{order}, orders...)

	if err := s.storage.WriteOrders(orders); err != nil {
		s.lg.Errorf("writing orders failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	// Best-effort notification: dispatched without awaiting the outcome,
	// failures are logged and never affect the response.
	if s.notifier != nil {
		go func() {
			if err := s.notifier.OrderCreated(order); err != nil {
				s.lg.Errorf("order created notification failed: %v", err)
			}
		}()
	}

	result := &model.CreateOrderResult{Order: order}
	if order.PaymentMethod == model.PaymentMethodUPI {
		result.UPILink = s.upiLink(order)
	}

	return result, nil
}

func (s *Service) ListOrders() ([]model.Order, *model.APIError) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := s.storage.ReadOrders()
	if err != nil {
		s.lg.Errorf("reading orders failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

func (s *Service) UpdateOrderStatus(id string, input model.UpdateOrderStatusDTO) (*model.Order, *model.APIError) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := s.storage.ReadOrders()
	if err != nil {
		s.lg.Errorf("reading orders failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrOrderNotFoundMessage,
		}
	}

	// Status stays an open string: any non-empty value is accepted, there is
	// no transition table.
	if input.Status != "" {
		orders[idx].Status = input.Status
	}
	if input.Note != nil {
		orders[idx].Note = *input.Note
	}

	if err := s.storage.WriteOrders(orders); err != nil {
		s.lg.Errorf("writing orders failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	order := orders[idx]
	return &order, nil
}

func (s *Service) CreateReview(input model.CreateReviewDTO) (*model.Review, *model.APIError) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrReviewFieldsMessage,
		}
	}

	rating := float64(model.DefaultRating)
	if input.Rating.Set {
		rating = input.Rating.Value
	}

	review := model.Review{
		ID:        identifier.Generate(reviewIDPrefix),
		Name:      input.Name,
		Comment:   input.Comment,
		Rating:    rating,
		CreatedAt: time.Now().UnixMilli(),
	}

	s.reviewsMu.Lock()
	defer s.reviewsMu.Unlock()

	reviews, err := s.storage.ReadReviews()
	if err != nil {
		s.lg.Errorf("reading reviews failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	reviews = append([]model.Review{review}, reviews...)

	if err := s.storage.WriteReviews(reviews); err != nil {
		s.lg.Errorf("writing reviews failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &review, nil
}

func (s *Service) ListReviews() ([]model.Review, *model.APIError) {
	s.reviewsMu.Lock()
	defer s.reviewsMu.Unlock()

	reviews, err := s.storage.ReadReviews()
	if err != nil {
		s.lg.Errorf("reading reviews failed: %v", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	// Reviews are listed newest-first by timestamp, not by stored order.
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})

	return reviews, nil
}

func initialStatus(paymentMethod string) string {
	if paymentMethod == model.PaymentMethodCOD {
		return model.OrderStatusProcessing
	}

	return model.OrderStatusPendingPayment
}
