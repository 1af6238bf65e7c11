package service_test

import (
	"context"
	"testing"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== HELPERS =====

func newTestDB(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, sqlMock
}

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error) {
	args := m.Called(ctx, exec, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

func (m *MockUserRepository) ListAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error) {
	args := m.Called(ctx, exec)
	if u, ok := args.Get(0).([]model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRefreshTokenRepo struct {
	mock.Mock
}

func (m *MockRefreshTokenRepo) Save(ctx context.Context, exec sqlx.ExtContext, token *model.RefreshToken) error {
	return m.Called(ctx, exec, token).Error(0)
}

func (m *MockRefreshTokenRepo) FindByToken(ctx context.Context, exec sqlx.ExtContext, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, exec, token)
	if t, ok := args.Get(0).(*model.RefreshToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepo) Delete(ctx context.Context, exec sqlx.ExtContext, token string) (bool, error) {
	args := m.Called(ctx, exec, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshTokenRepo) DeleteExpired(ctx context.Context, exec sqlx.ExtContext, before time.Time) (int64, error) {
	args := m.Called(ctx, exec, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, exec sqlx.ExtContext, address *model.Address) (*model.Address, error) {
	args := m.Called(ctx, exec, address)
	if a, ok := args.Get(0).(*model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Address, error) {
	args := m.Called(ctx, exec, id)
	if a, ok := args.Get(0).(*model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, exec, userID)
	if a, ok := args.Get(0).([]model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, exec sqlx.ExtContext, address *model.Address) (*model.Address, error) {
	args := m.Called(ctx, exec, address)
	if a, ok := args.Get(0).(*model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id, userID int64) error {
	return m.Called(ctx, exec, id, userID).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, exec sqlx.ExtContext, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, exec, category)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Category, error) {
	args := m.Called(ctx, exec, id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, exec sqlx.ExtContext) ([]model.Category, error) {
	args := m.Called(ctx, exec)
	if c, ok := args.Get(0).([]model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, exec sqlx.ExtContext, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, exec, category)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, exec sqlx.ExtContext, item *model.Item) (*model.Item, error) {
	args := m.Called(ctx, exec, item)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Item, error) {
	args := m.Called(ctx, exec, id)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) FindByIDs(ctx context.Context, exec sqlx.ExtContext, ids []int64) (map[int64]model.Item, error) {
	args := m.Called(ctx, exec, ids)
	if i, ok := args.Get(0).(map[int64]model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, exec sqlx.ExtContext) ([]model.Item, error) {
	args := m.Called(ctx, exec)
	if i, ok := args.Get(0).([]model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, exec sqlx.ExtContext, item *model.Item) (*model.Item, error) {
	args := m.Called(ctx, exec, item)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) SetImageKey(ctx context.Context, exec sqlx.ExtContext, id int64, key string) error {
	return m.Called(ctx, exec, id, key).Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, exec sqlx.ExtContext, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, exec, order)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Order, error) {
	args := m.Called(ctx, exec, id)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, exec sqlx.ExtContext, offset, limit int) ([]model.Order, int, error) {
	args := m.Called(ctx, exec, offset, limit)
	if o, ok := args.Get(0).([]model.Order); ok {
		return o, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockOrderRepository) ListByClient(ctx context.Context, exec sqlx.ExtContext, clientID int64, offset, limit int) ([]model.Order, int, error) {
	args := m.Called(ctx, exec, clientID, offset, limit)
	if o, ok := args.Get(0).([]model.Order); ok {
		return o, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id int64, status model.OrderStatus, confirmedBy int64) (*model.Order, error) {
	args := m.Called(ctx, exec, id, status, confirmedBy)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Create(ctx context.Context, exec sqlx.ExtContext, item *model.OrderItem) (*model.OrderItem, error) {
	args := m.Called(ctx, exec, item)
	if i, ok := args.Get(0).(*model.OrderItem); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, exec sqlx.ExtContext, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, exec, orderID)
	if i, ok := args.Get(0).([]model.OrderItem); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, exec sqlx.ExtContext, n *model.Notification) (*model.Notification, error) {
	args := m.Called(ctx, exec, n)
	if r, ok := args.Get(0).(*model.Notification); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64, offset, limit int) ([]model.Notification, int, error) {
	args := m.Called(ctx, exec, userID, offset, limit)
	if r, ok := args.Get(0).([]model.Notification); ok {
		return r, args.Int(1), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, exec sqlx.ExtContext, id, userID int64) (bool, error) {
	args := m.Called(ctx, exec, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, exec sqlx.ExtContext, userID int64) (int64, error) {
	args := m.Called(ctx, exec, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, exec sqlx.ExtContext, userID int64) (int, error) {
	args := m.Called(ctx, exec, userID)
	return args.Int(0), args.Error(1)
}

type MockUnreadCache struct {
	mock.Mock
}

func (m *MockUnreadCache) GetUnreadCount(ctx context.Context, userID int64) (int, bool, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockUnreadCache) SetUnreadCount(ctx context.Context, userID int64, count int) error {
	return m.Called(ctx, userID, count).Error(0)
}

func (m *MockUnreadCache) InvalidateUnreadCount(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EmitToUser(userID int64, event string, payload any) {
	m.Called(userID, event, payload)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) CreateAndEmit(ctx context.Context, userID int64, title, body string, data model.JSONMap) (*model.Notification, error) {
	args := m.Called(ctx, userID, title, body, data)
	if n, ok := args.Get(0).(*model.Notification); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*model.Page[model.Notification], error) {
	args := m.Called(ctx, userID, page, pageSize)
	if p, ok := args.Get(0).(*model.Page[model.Notification]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockNotificationService) CountUnread(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event model.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() {}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GeneratePresignedPutURL(ctx context.Context, key, contentType string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expire)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) ObjectContentType(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
