package entities

import (
	"errors"
	"time"
)

// Ошибки домена корзины.
var (
	ErrCartLineNotFound = errors.New("product not found in the user's cart")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

// CartLine - позиция корзины пользователя. Инвариант: quantity > 0,
// на каждый товар не более одной позиции.
type CartLine struct {
	ProductID string
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedCartLine - позиция корзины с разрешенной ссылкой на товар.
type ResolvedCartLine struct {
	Product  Product `json:"product"`
	Quantity int32   `json:"quantity"`
}
