package requestresponse

import "food-ordering-backend/internal/model"

type OrderItemRequest struct {
	ItemID   int64 `json:"itemId" validate:"required,gt=0" example:"1"`
	Quantity int   `json:"quantity" validate:"required,gt=0" example:"2"`
}

// CreateOrderRequest : ClientID учитывается только для администратора
type CreateOrderRequest struct {
	ClientID      int64              `json:"clientId" validate:"omitempty,gt=0" example:"2"`
	AddressID     int64              `json:"addressId" validate:"required,gt=0" example:"1"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL CASH" example:"CASH"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING COMPLETED CANCELLED" example:"PROCESSING"`
}

type OrderResponse struct {
	Message string       `json:"message,omitempty" example:"OK"`
	Order   *model.Order `json:"order"`
}

type OrderPageResponse = model.Page[model.Order]
