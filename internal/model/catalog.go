package model

import "time"

type Category struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Item : позиция меню. Цена хранится в центах.
// ImageKey : ключ объекта в S3, ImageURL : внешний адрес картинки.
type Item struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description,omitempty"`
	UnitPriceCents int64     `db:"unit_price_cents" json:"unitPriceCents"`
	CategoryID     int64     `db:"category_id" json:"categoryId"`
	ImageURL       string    `db:"image_url" json:"imageUrl,omitempty"`
	ImageKey       string    `db:"image_key" json:"-"`
	Available      bool      `db:"available" json:"available"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
