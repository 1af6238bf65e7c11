package requestresponse

import "food-ordering-backend/internal/model"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100" example:"Lanches"`
	Description string `json:"description" validate:"max=255" example:"Pratos principais"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type CategoryResponse struct {
	Message  string          `json:"message,omitempty" example:"OK"`
	Category *model.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []model.Category `json:"categories"`
}

// CreateItemRequest : цена в центах
type CreateItemRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100" example:"Hambúrguer"`
	Description    string `json:"description" validate:"max=255" example:"Hambúrguer artesanal"`
	UnitPriceCents int64  `json:"unitPriceCents" validate:"gte=0" example:"1599"`
	CategoryID     int64  `json:"categoryId" validate:"required,gt=0" example:"1"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,url"`
	Available      *bool  `json:"available" example:"true"`
}

type UpdateItemRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=255"`
	UnitPriceCents *int64  `json:"unitPriceCents" validate:"omitempty,gte=0"`
	CategoryID     *int64  `json:"categoryId" validate:"omitempty,gt=0"`
	ImageURL       *string `json:"imageUrl" validate:"omitempty,url"`
	Available      *bool   `json:"available"`
}

type ItemResponse struct {
	Message string      `json:"message,omitempty" example:"OK"`
	Item    *model.Item `json:"item"`
}

type ItemListResponse struct {
	Items []model.Item `json:"items"`
}

// ImageUploadRequest : тип загружаемой картинки
type ImageUploadRequest struct {
	ContentType string `json:"contentType" validate:"required,oneof=image/jpeg image/png image/webp" example:"image/jpeg"`
}

// ConfirmImageUploadRequest : ключ, выданный вместе с uploadUrl
type ConfirmImageUploadRequest struct {
	Key string `json:"key" validate:"required,max=255" example:"items/1/4f1c2c1e-0d7b-4c41-9f0c-2a4a1f0a7c11"`
}

// ImageUploadResponse : presigned PUT URL для загрузки картинки в S3
type ImageUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/items/1/...?X-Amz-Signature=..."`
	Key       string `json:"key" example:"items/1/4f1c2c1e-0d7b-4c41-9f0c-2a4a1f0a7c11"`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}
