package service_test

import (
	"context"
	"errors"
	"testing"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc           *service.OrderService
	sqlMock       sqlmock.Sqlmock
	orders        *MockOrderRepository
	orderItems    *MockOrderItemRepository
	items         *MockItemRepository
	addresses     *MockAddressRepository
	users         *MockUserRepository
	notifications *MockNotificationService
	publisher     *MockPublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	db, sqlMock := newTestDB(t)
	f := &orderFixture{
		sqlMock:       sqlMock,
		orders:        new(MockOrderRepository),
		orderItems:    new(MockOrderItemRepository),
		items:         new(MockItemRepository),
		addresses:     new(MockAddressRepository),
		users:         new(MockUserRepository),
		notifications: new(MockNotificationService),
		publisher:     new(MockPublisher),
	}
	f.svc = service.NewOrderService(db, f.orders, f.orderItems, f.items, f.addresses, f.users, f.notifications, f.publisher)
	return f
}

var (
	admin  = &model.User{ID: 1, Type: model.UserTypeAdmin}
	client = &model.User{ID: 2, Type: model.UserTypeClient}
)

func validOrderRequest() requestresponse.CreateOrderRequest {
	return requestresponse.CreateOrderRequest{
		AddressID:     5,
		PaymentMethod: "CASH",
		Items: []requestresponse.OrderItemRequest{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
	}
}

func menu() map[int64]model.Item {
	return map[int64]model.Item{
		1: {ID: 1, Name: "Hambúrguer", UnitPriceCents: 1599, Available: true},
		2: {ID: 2, Name: "Refrigerante", UnitPriceCents: 499, Available: true},
	}
}

func TestOrderCreate_SnapshotsPricesAndNotifiesAdmins(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.addresses.On("FindByID", ctx, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 2}, nil)
	f.items.On("FindByIDs", ctx, mock.Anything, []int64{1, 2}).Return(menu(), nil)

	f.sqlMock.ExpectBegin()
	f.orders.On("Create", ctx, mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.ClientID == 2 && o.TotalAmountCents == 2*1599+499 && o.Status == model.OrderStatusPending
	})).Return(&model.Order{ID: 42, ClientID: 2, AddressID: 5, Status: model.OrderStatusPending, TotalAmountCents: 3697}, nil)
	f.orderItems.On("Create", ctx, mock.Anything, mock.MatchedBy(func(oi *model.OrderItem) bool {
		return oi.OrderID == 42 && oi.ItemID == 1 && oi.SubtotalCents == 3198
	})).Return(&model.OrderItem{ID: 1, OrderID: 42, ItemID: 1, Quantity: 2, UnitPriceCents: 1599, SubtotalCents: 3198}, nil)
	f.orderItems.On("Create", ctx, mock.Anything, mock.MatchedBy(func(oi *model.OrderItem) bool {
		return oi.OrderID == 42 && oi.ItemID == 2 && oi.SubtotalCents == 499
	})).Return(&model.OrderItem{ID: 2, OrderID: 42, ItemID: 2, Quantity: 1, UnitPriceCents: 499, SubtotalCents: 499}, nil)
	f.sqlMock.ExpectCommit()

	f.users.On("ListAdmins", ctx, mock.Anything).Return([]model.User{*admin, {ID: 7, Type: model.UserTypeAdmin}}, nil)
	for _, adminID := range []int64{1, 7} {
		f.notifications.On("CreateAndEmit", ctx, adminID, "Novo Pedido Recebido",
			"Um novo pedido #42 foi feito pelo cliente #2.",
			model.JSONMap{"orderId": int64(42), "clientId": int64(2)},
		).Return(&model.Notification{}, nil)
	}
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(e model.OrderEvent) bool {
		return e.Type == model.OrderEventCreated && e.OrderID == 42 && e.TotalAmountCents == 3697
	})).Return(nil)

	order, err := f.svc.Create(ctx, client, validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID)
	assert.Len(t, order.Items, 2)
	f.orders.AssertExpectations(t)
	f.orderItems.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	assert.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestOrderCreate_SideEffectFailuresDoNotFailOrder(t *testing.T) {
	f := newOrderFixture(t)

	f.addresses.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 2}, nil)
	f.items.On("FindByIDs", mock.Anything, mock.Anything, mock.Anything).Return(menu(), nil)
	f.sqlMock.ExpectBegin()
	f.orders.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&model.Order{ID: 43, ClientID: 2}, nil)
	f.orderItems.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&model.OrderItem{}, nil)
	f.sqlMock.ExpectCommit()
	f.users.On("ListAdmins", mock.Anything, mock.Anything).Return([]model.User{*admin}, nil)
	f.notifications.On("CreateAndEmit", mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("insert failed"))
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := f.svc.Create(context.Background(), client, validOrderRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(43), order.ID)
}

func TestOrderCreate_ItemInsertRollsBack(t *testing.T) {
	f := newOrderFixture(t)

	f.addresses.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 2}, nil)
	f.items.On("FindByIDs", mock.Anything, mock.Anything, mock.Anything).Return(menu(), nil)
	f.sqlMock.ExpectBegin()
	f.orders.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&model.Order{ID: 44, ClientID: 2}, nil)
	f.orderItems.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))
	f.sqlMock.ExpectRollback()

	_, err := f.svc.Create(context.Background(), client, validOrderRequest())

	assert.Error(t, err)
	f.notifications.AssertNotCalled(t, "CreateAndEmit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	assert.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestOrderCreate_Rejections(t *testing.T) {
	t.Run("foreign address", func(t *testing.T) {
		f := newOrderFixture(t)
		f.addresses.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 9}, nil)

		_, err := f.svc.Create(context.Background(), client, validOrderRequest())
		assert.ErrorIs(t, err, apperror.ErrAddressNotFound)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newOrderFixture(t)
		f.addresses.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 2}, nil)
		f.items.On("FindByIDs", mock.Anything, mock.Anything, mock.Anything).
			Return(map[int64]model.Item{1: menu()[1]}, nil)

		_, err := f.svc.Create(context.Background(), client, validOrderRequest())
		assert.ErrorIs(t, err, apperror.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		f := newOrderFixture(t)
		items := menu()
		soldOut := items[2]
		soldOut.Available = false
		items[2] = soldOut

		f.addresses.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(&model.Address{ID: 5, UserID: 2}, nil)
		f.items.On("FindByIDs", mock.Anything, mock.Anything, mock.Anything).Return(items, nil)

		_, err := f.svc.Create(context.Background(), client, validOrderRequest())
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("client orders for someone else", func(t *testing.T) {
		f := newOrderFixture(t)
		req := validOrderRequest()
		req.ClientID = 9

		_, err := f.svc.Create(context.Background(), client, req)
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("bad payment method", func(t *testing.T) {
		f := newOrderFixture(t)
		req := validOrderRequest()
		req.PaymentMethod = "BITCOIN"

		_, err := f.svc.Create(context.Background(), client, req)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestOrderGetByID_Ownership(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.On("FindByID", mock.Anything, mock.Anything, int64(42)).Return(&model.Order{ID: 42, ClientID: 3}, nil)
	f.orderItems.On("ListByOrder", mock.Anything, mock.Anything, int64(42)).Return([]model.OrderItem{{ID: 1}}, nil)

	_, err := f.svc.GetByID(context.Background(), client, 42)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	order, err := f.svc.GetByID(context.Background(), admin, 42)
	require.NoError(t, err)
	assert.Len(t, order.Items, 1)
}

func TestOrderListByClient(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.ListByClient(context.Background(), client, 3, 1, 10)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	f.orders.On("ListByClient", mock.Anything, mock.Anything, int64(2), 0, 10).
		Return([]model.Order{{ID: 1, ClientID: 2}}, 1, nil)
	f.orderItems.On("ListByOrder", mock.Anything, mock.Anything, int64(1)).Return([]model.OrderItem{}, nil)

	page, err := f.svc.ListByClient(context.Background(), client, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.Total)
	assert.Equal(t, model.DefaultPageSize, page.Meta.PageSize)
}

func TestOrderUpdateStatus(t *testing.T) {
	t.Run("client is forbidden", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.UpdateStatus(context.Background(), client, 42, model.OrderStatusCompleted)
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.UpdateStatus(context.Background(), admin, 42, model.OrderStatus("LOST"))
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("admin updates and client is notified", func(t *testing.T) {
		f := newOrderFixture(t)
		confirmedBy := int64(1)
		updated := &model.Order{ID: 42, ClientID: 2, Status: model.OrderStatusProcessing, ConfirmedByUserID: &confirmedBy}

		f.orders.On("UpdateStatus", mock.Anything, mock.Anything, int64(42), model.OrderStatusProcessing, int64(1)).Return(updated, nil)
		f.orderItems.On("ListByOrder", mock.Anything, mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)
		f.notifications.On("CreateAndEmit", mock.Anything, int64(2), "Pedido Atualizado", "Seu pedido #42 foi atualizado.",
			model.JSONMap{"orderId": int64(42), "status": model.OrderStatusProcessing},
		).Return(&model.Notification{}, nil)
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e model.OrderEvent) bool {
			return e.Type == model.OrderEventStatusChanged && e.Status == model.OrderStatusProcessing
		})).Return(nil)

		order, err := f.svc.UpdateStatus(context.Background(), admin, 42, model.OrderStatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *order.ConfirmedByUserID)
		f.notifications.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})
}
