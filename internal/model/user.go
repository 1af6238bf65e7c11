package model

import "time"

type UserType string

const (
	UserTypeAdmin  UserType = "ADMIN"
	UserTypeClient UserType = "CLIENT"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        string    `db:"phone" json:"phone,omitempty"`
	Type         UserType  `db:"type" json:"type"`
	Addresses    []Address `db:"-" json:"addresses,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Type == UserTypeAdmin
}

// CanAccess : админ видит всё, клиент видит только свои ресурсы
func (u *User) CanAccess(ownerID int64) bool {
	return u.IsAdmin() || (u != nil && u.ID == ownerID)
}
