package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/shopfront/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(input model.CreateOrderDTO) (*model.CreateOrderResult, *model.APIError)
	ListOrders() ([]model.Order, *model.APIError)
	UpdateOrderStatus(id string, input model.UpdateOrderStatusDTO) (*model.Order, *model.APIError)

	CreateReview(input model.CreateReviewDTO) (*model.Review, *model.APIError)
	ListReviews() ([]model.Review, *model.APIError)
}

type pingResponse struct {
	OK   bool  `json:"ok"`
	Time int64 `json:"time"`
}

type ordersResponse struct {
	OK     bool                    `json:"ok"`
	Orders model.GetOrdersResponse `json:"orders"`
}

type orderResponse struct {
	OK      bool         `json:"ok"`
	Order   *model.Order `json:"order"`
	UPILink string       `json:"upiLink,omitempty"`
}

type reviewsResponse struct {
	OK      bool                     `json:"ok"`
	Reviews model.GetReviewsResponse `json:"reviews"`
}

type reviewResponse struct {
	OK     bool          `json:"ok"`
	Review *model.Review `json:"review"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, pingResponse{OK: true, Time: time.Now().UnixMilli()}, http.StatusOK)
}

func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.ListOrders()
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	if orders == nil {
		orders = model.GetOrdersResponse{}
	}

	writeJSON(w, ordersResponse{OK: true, Orders: orders}, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		})
		return
	}

	result, apiErr := c.service.CreateOrder(body)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	writeJSON(w, orderResponse{
		OK:      true,
		Order:   &result.Order,
		UPILink: result.UPILink,
	}, http.StatusOK)
}

func (c *Controller) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateOrderStatusDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		})
		return
	}

	order, apiErr := c.service.UpdateOrderStatus(chi.URLParam(r, "id"), body)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	writeJSON(w, orderResponse{OK: true, Order: order}, http.StatusOK)
}

func (c *Controller) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, apiErr := c.service.ListReviews()
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	if reviews == nil {
		reviews = model.GetReviewsResponse{}
	}

	writeJSON(w, reviewsResponse{OK: true, Reviews: reviews}, http.StatusOK)
}

func (c *Controller) CreateReview(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateReviewDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeError(w, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		})
		return
	}

	review, apiErr := c.service.CreateReview(body)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	writeJSON(w, reviewResponse{OK: true, Review: review}, http.StatusOK)
}
