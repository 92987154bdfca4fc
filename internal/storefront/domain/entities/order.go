package entities

import (
	"errors"
	"time"
)

// Ошибки домена заказов.
var (
	ErrEmptyOrder    = errors.New("order must contain at least one product")
	ErrTotalMismatch = errors.New("order total does not match catalog prices")
	ErrEmptyAddress  = errors.New("delivery address cannot be empty")
)

// OrderItem - позиция заказа.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// Order представляет заказ пользователя. Создается один раз при оформлении
// и после этого неизменяем.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Items      []OrderItem `json:"products"`
	TotalCents int64       `json:"total_cents"`
	Address    string      `json:"address"`
	CreatedAt  time.Time   `json:"created_at"`
}
