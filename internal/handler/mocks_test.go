package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// ===== HELPERS =====

// newRequest : запрос с телом, параметрами пути chi и пользователем в контексте
func newRequest(method, target, body string, user *model.User, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if user != nil {
		ctx = security.ContextWithUser(ctx, user)
	}
	return req.WithContext(ctx)
}

var (
	adminUser  = &model.User{ID: 1, Name: "Admin", Email: "rnathanmoreira@gmail.com", Type: model.UserTypeAdmin}
	clientUser = &model.User{ID: 2, Name: "Teste", Email: "teste@gmail.com", Type: model.UserTypeClient}
)

// ===== MOCKS =====

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	args := m.Called(ctx, email, password)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.Session, error) {
	args := m.Called(ctx, refreshToken)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockAuthenticationService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req requestresponse.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	args := m.Called(ctx, actor, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUserWithAddresses(ctx context.Context, actor *model.User, id int64) (*model.User, error) {
	args := m.Called(ctx, actor, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, actorID int64, req requestresponse.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, actorID, req)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, actorID int64) error {
	return m.Called(ctx, actorID).Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, actor *model.User, req requestresponse.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, actor, req)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, page, pageSize int) (*model.Page[model.Order], error) {
	args := m.Called(ctx, page, pageSize)
	if p, ok := args.Get(0).(*model.Page[model.Order]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) ListByClient(ctx context.Context, actor *model.User, clientID int64, page, pageSize int) (*model.Page[model.Order], error) {
	args := m.Called(ctx, actor, clientID, page, pageSize)
	if p, ok := args.Get(0).(*model.Page[model.Order]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, actor *model.User, id int64) (*model.Order, error) {
	args := m.Called(ctx, actor, id)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, actor *model.User, id int64, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, actor, id, status)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
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

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) Create(ctx context.Context, userID int64, req requestresponse.CreateAddressRequest) (*model.Address, error) {
	args := m.Called(ctx, userID, req)
	if a, ok := args.Get(0).(*model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressService) Update(ctx context.Context, userID, id int64, req requestresponse.UpdateAddressRequest) (*model.Address, error) {
	args := m.Called(ctx, userID, id, req)
	if a, ok := args.Get(0).(*model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressService) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockAddressService) ListMine(ctx context.Context, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	if a, ok := args.Get(0).([]model.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, req requestresponse.CreateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, req)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, req requestresponse.UpdateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, id, req)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, req requestresponse.CreateItemRequest) (*model.Item, error) {
	args := m.Called(ctx, req)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if i, ok := args.Get(0).([]model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id int64, req requestresponse.UpdateItemRequest) (*model.Item, error) {
	args := m.Called(ctx, id, req)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemService) CreateImageUploadURL(ctx context.Context, id int64, contentType string) (*requestresponse.ImageUploadResponse, error) {
	args := m.Called(ctx, id, contentType)
	if u, ok := args.Get(0).(*requestresponse.ImageUploadResponse); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemService) ConfirmImageUpload(ctx context.Context, id int64, key string) (*model.Item, error) {
	args := m.Called(ctx, id, key)
	if i, ok := args.Get(0).(*model.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}
