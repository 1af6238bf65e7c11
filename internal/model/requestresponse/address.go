package requestresponse

import "food-ordering-backend/internal/model"

// CreateAddressRequest : все поля обязательны
type CreateAddressRequest struct {
	Street   string `json:"street" validate:"required,max=255" example:"Rua das Flores"`
	Number   string `json:"number" validate:"required,max=20" example:"123"`
	District string `json:"district" validate:"required,max=100" example:"Centro"`
	City     string `json:"city" validate:"required,max=100" example:"São Paulo"`
	State    string `json:"state" validate:"required,max=50" example:"SP"`
	ZipCode  string `json:"zipCode" validate:"required,max=20" example:"01000-000"`
}

type UpdateAddressRequest struct {
	Street   *string `json:"street" validate:"omitempty,min=1,max=255"`
	Number   *string `json:"number" validate:"omitempty,min=1,max=20"`
	District *string `json:"district" validate:"omitempty,min=1,max=100"`
	City     *string `json:"city" validate:"omitempty,min=1,max=100"`
	State    *string `json:"state" validate:"omitempty,min=1,max=50"`
	ZipCode  *string `json:"zipCode" validate:"omitempty,min=1,max=20"`
}

type AddressResponse struct {
	Message string         `json:"message,omitempty" example:"OK"`
	Address *model.Address `json:"address"`
}

type AddressListResponse struct {
	Addresses []model.Address `json:"addresses"`
}
