package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/shopfront/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mockRepo "github.com/ibeloyar/shopfront/internal/repository/mocks"
)

const (
	testMerchantVPA  = "shop@upi"
	testMerchantName = "Test Shop"
)

func newTestService(t *testing.T) (*Service, *mockRepo.MockStorageRepo, *mockRepo.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := mockRepo.NewMockStorageRepo(ctrl)
	mockNotifier := mockRepo.NewMockNotifier(ctrl)

	svc := New(mockStorage, mockNotifier, testMerchantVPA, testMerchantName, zap.NewNop().Sugar())

	return svc, mockStorage, mockNotifier
}

func expectNotified(t *testing.T, mockNotifier *mockRepo.MockNotifier) <-chan model.Order {
	t.Helper()

	notified := make(chan model.Order, 1)
	mockNotifier.EXPECT().
		OrderCreated(gomock.Any()).
		DoAndReturn(func(order model.Order) error {
			notified <- order
			return nil
		})

	return notified
}

func waitNotified(t *testing.T, notified <-chan model.Order) model.Order {
	t.Helper()

	select {
	case order := <-notified:
		return order
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
		return model.Order{}
	}
}

func TestService_CreateOrder_Success(t *testing.T) {
	svc, mockStorage, mockNotifier := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, nil)

	var stored []model.Order
	mockStorage.EXPECT().
		WriteOrders(gomock.Any()).
		DoAndReturn(func(orders []model.Order) error {
			stored = orders
			return nil
		})

	notified := expectNotified(t, mockNotifier)

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items:         []map[string]any{{"sku": "tea"}},
		Total:         120,
		PaymentMethod: model.PaymentMethodCOD,
	})

	require.Nil(t, apiErr)
	require.NotNil(t, result)

	assert.True(t, strings.HasPrefix(result.Order.ID, "ORD_"))
	assert.Equal(t, model.OrderStatusProcessing, result.Order.Status)
	assert.Equal(t, 120.0, result.Order.Total)
	assert.NotZero(t, result.Order.CreatedAt)
	assert.NotNil(t, result.Order.Customer)
	assert.Empty(t, result.UPILink)

	require.Len(t, stored, 1)
	assert.Equal(t, result.Order, stored[0])

	assert.Equal(t, result.Order, waitNotified(t, notified))
}

func TestService_CreateOrder_PrependsToExisting(t *testing.T) {
	svc, mockStorage, mockNotifier := newTestService(t)

	existing := model.Order{ID: "ORD_old0000", Status: "shipped"}
	mockStorage.EXPECT().ReadOrders().Return([]model.Order{existing}, nil)

	var stored []model.Order
	mockStorage.EXPECT().
		WriteOrders(gomock.Any()).
		DoAndReturn(func(orders []model.Order) error {
			stored = orders
			return nil
		})

	notified := expectNotified(t, mockNotifier)

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items: []map[string]any{{"sku": "cup"}},
	})

	require.Nil(t, apiErr)

	require.Len(t, stored, 2)
	assert.Equal(t, result.Order.ID, stored[0].ID)
	assert.Equal(t, existing, stored[1])

	waitNotified(t, notified)
}

func TestService_CreateOrder_NoItems(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, items := range [][]map[string]any{nil, {}} {
		result, apiErr := svc.CreateOrder(model.CreateOrderDTO{Items: items})

		assert.Nil(t, result)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		assert.Equal(t, model.ErrNoItemsMessage, apiErr.Message)
	}
}

func TestService_CreateOrder_UPILink(t *testing.T) {
	svc, mockStorage, mockNotifier := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, nil)
	mockStorage.EXPECT().WriteOrders(gomock.Any()).Return(nil)
	notified := expectNotified(t, mockNotifier)

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items:         []map[string]any{{"sku": "kettle"}},
		Total:         499.5,
		PaymentMethod: model.PaymentMethodUPI,
	})

	require.Nil(t, apiErr)
	require.NotNil(t, result)

	assert.Equal(t, model.OrderStatusPendingPayment, result.Order.Status)
	require.NotEmpty(t, result.UPILink)
	assert.True(t, strings.HasPrefix(result.UPILink, "upi://pay?"))
	assert.Contains(t, result.UPILink, "499.50")
	assert.Contains(t, result.UPILink, result.Order.ID)
	assert.Contains(t, result.UPILink, "cu=INR")
	assert.Contains(t, result.UPILink, "pa=shop%40upi")

	waitNotified(t, notified)
}

func TestService_CreateOrder_UnknownPaymentMethod(t *testing.T) {
	svc, mockStorage, mockNotifier := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, nil)
	mockStorage.EXPECT().WriteOrders(gomock.Any()).Return(nil)
	notified := expectNotified(t, mockNotifier)

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items:         []map[string]any{{"sku": "mug"}},
		PaymentMethod: "CARD",
	})

	require.Nil(t, apiErr)

	// anything but COD starts in pending_payment, the method is stored as-is
	assert.Equal(t, model.OrderStatusPendingPayment, result.Order.Status)
	assert.Equal(t, "CARD", result.Order.PaymentMethod)
	assert.Empty(t, result.UPILink)

	waitNotified(t, notified)
}

func TestService_CreateOrder_StorageReadError(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, model.ErrStorageFailure)

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items: []map[string]any{{"sku": "tea"}},
	})

	assert.Nil(t, result)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrInternalServerMessage, apiErr.Message)
}

func TestService_CreateOrder_StorageWriteError(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, nil)
	mockStorage.EXPECT().WriteOrders(gomock.Any()).Return(errors.New("disk full"))

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items: []map[string]any{{"sku": "tea"}},
	})

	assert.Nil(t, result)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestService_CreateOrder_NotificationFailureIgnored(t *testing.T) {
	svc, mockStorage, mockNotifier := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return(nil, nil)
	mockStorage.EXPECT().WriteOrders(gomock.Any()).Return(nil)

	notified := make(chan struct{})
	mockNotifier.EXPECT().
		OrderCreated(gomock.Any()).
		DoAndReturn(func(model.Order) error {
			close(notified)
			return errors.New("smtp down")
		})

	result, apiErr := svc.CreateOrder(model.CreateOrderDTO{
		Items: []map[string]any{{"sku": "tea"}},
	})

	require.Nil(t, apiErr)
	require.NotNil(t, result)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func TestService_ListOrders_ReturnsStoredOrder(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	stored := []model.Order{
		{ID: "ORD_new0000", CreatedAt: 2},
		{ID: "ORD_old0000", CreatedAt: 1},
	}
	mockStorage.EXPECT().ReadOrders().Return(stored, nil)

	orders, apiErr := svc.ListOrders()

	require.Nil(t, apiErr)
	assert.Equal(t, stored, orders)
}

func TestService_UpdateOrderStatus_NotFound(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return([]model.Order{{ID: "ORD_abc1234"}}, nil)

	order, apiErr := svc.UpdateOrderStatus("ORD_missing", model.UpdateOrderStatusDTO{Status: "shipped"})

	assert.Nil(t, order)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, model.ErrOrderNotFoundMessage, apiErr.Message)
}

func TestService_UpdateOrderStatus_Success(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return([]model.Order{
		{ID: "ORD_abc1234", Status: model.OrderStatusProcessing, CreatedAt: 1700000000000},
	}, nil)

	var stored []model.Order
	mockStorage.EXPECT().
		WriteOrders(gomock.Any()).
		DoAndReturn(func(orders []model.Order) error {
			stored = orders
			return nil
		})

	note := "left at door"
	order, apiErr := svc.UpdateOrderStatus("ORD_abc1234", model.UpdateOrderStatusDTO{
		Status: "shipped",
		Note:   &note,
	})

	require.Nil(t, apiErr)
	require.NotNil(t, order)

	assert.Equal(t, "shipped", order.Status)
	assert.Equal(t, note, order.Note)
	assert.Equal(t, int64(1700000000000), order.CreatedAt)

	require.Len(t, stored, 1)
	assert.Equal(t, *order, stored[0])
}

func TestService_UpdateOrderStatus_EmptyStatusKeepsCurrent(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadOrders().Return([]model.Order{
		{ID: "ORD_abc1234", Status: "shipped"},
	}, nil)
	mockStorage.EXPECT().WriteOrders(gomock.Any()).Return(nil)

	note := "call first"
	order, apiErr := svc.UpdateOrderStatus("ORD_abc1234", model.UpdateOrderStatusDTO{Note: &note})

	require.Nil(t, apiErr)
	assert.Equal(t, "shipped", order.Status)
	assert.Equal(t, note, order.Note)
}

func TestService_CreateReview_Success(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadReviews().Return(nil, nil)

	var stored []model.Review
	mockStorage.EXPECT().
		WriteReviews(gomock.Any()).
		DoAndReturn(func(reviews []model.Review) error {
			stored = reviews
			return nil
		})

	review, apiErr := svc.CreateReview(model.CreateReviewDTO{
		Name:    "A",
		Comment: "ok",
		Rating:  model.Rating{Value: 4, Set: true},
	})

	require.Nil(t, apiErr)
	require.NotNil(t, review)

	assert.True(t, strings.HasPrefix(review.ID, "REV_"))
	assert.Equal(t, 4.0, review.Rating)
	assert.NotZero(t, review.CreatedAt)

	require.Len(t, stored, 1)
	assert.Equal(t, *review, stored[0])
}

func TestService_CreateReview_DefaultRating(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadReviews().Return(nil, nil)
	mockStorage.EXPECT().WriteReviews(gomock.Any()).Return(nil)

	review, apiErr := svc.CreateReview(model.CreateReviewDTO{
		Name:    "A",
		Comment: "ok",
	})

	require.Nil(t, apiErr)
	assert.Equal(t, 5.0, review.Rating)
}

func TestService_CreateReview_NullRatingDefaults(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadReviews().Return(nil, nil)
	mockStorage.EXPECT().WriteReviews(gomock.Any()).Return(nil)

	var input model.CreateReviewDTO
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","comment":"ok","rating":null}`), &input))

	review, apiErr := svc.CreateReview(input)

	require.Nil(t, apiErr)
	assert.Equal(t, 5.0, review.Rating)
}

func TestService_CreateReview_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []model.CreateReviewDTO{
		{Name: "", Comment: "x"},
		{Name: "A", Comment: ""},
		{},
	}

	for _, input := range tests {
		review, apiErr := svc.CreateReview(input)

		assert.Nil(t, review)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		assert.Equal(t, model.ErrReviewFieldsMessage, apiErr.Message)
	}
}

func TestService_ListReviews_SortedByCreatedAtDesc(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadReviews().Return([]model.Review{
		{ID: "REV_mid0000", CreatedAt: 2},
		{ID: "REV_new0000", CreatedAt: 3},
		{ID: "REV_old0000", CreatedAt: 1},
	}, nil)

	reviews, apiErr := svc.ListReviews()

	require.Nil(t, apiErr)
	require.Len(t, reviews, 3)
	assert.Equal(t, "REV_new0000", reviews[0].ID)
	assert.Equal(t, "REV_mid0000", reviews[1].ID)
	assert.Equal(t, "REV_old0000", reviews[2].ID)
}

func TestService_ListReviews_StorageError(t *testing.T) {
	svc, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().ReadReviews().Return(nil, model.ErrStorageFailure)

	reviews, apiErr := svc.ListReviews()

	assert.Nil(t, reviews)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}
