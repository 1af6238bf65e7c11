package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentPaypal     PaymentMethod = "PAYPAL"
	PaymentCash       PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPaypal, PaymentCash:
		return true
	}
	return false
}

type Order struct {
	ID                int64         `db:"id" json:"id"`
	ClientID          int64         `db:"client_id" json:"clientId"`
	AddressID         int64         `db:"address_id" json:"addressId"`
	ConfirmedByUserID *int64        `db:"confirmed_by_user_id" json:"confirmedByUserId,omitempty"`
	Status            OrderStatus   `db:"status" json:"status"`
	PaymentMethod     PaymentMethod `db:"payment_method" json:"paymentMethod"`
	TotalAmountCents  int64         `db:"total_amount_cents" json:"totalAmountCents"`
	Items             []OrderItem   `db:"-" json:"items,omitempty"`
	CreatedAt         time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updatedAt"`
}

// OrderItem : строка заказа; цена фиксируется в момент оформления
type OrderItem struct {
	ID             int64     `db:"id" json:"id"`
	OrderID        int64     `db:"order_id" json:"orderId"`
	ItemID         int64     `db:"item_id" json:"itemId"`
	Quantity       int       `db:"quantity" json:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents" json:"unitPriceCents"`
	SubtotalCents  int64     `db:"subtotal_cents" json:"subtotalCents"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent : сообщение для брокера
type OrderEvent struct {
	Type             string      `json:"type"`
	OrderID          int64       `json:"orderId"`
	ClientID         int64       `json:"clientId"`
	Status           OrderStatus `json:"status"`
	TotalAmountCents int64       `json:"totalAmountCents"`
	OccurredAt       time.Time   `json:"occurredAt"`
}
