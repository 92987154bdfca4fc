package entities

import (
	"errors"
	"time"
)

// ErrProductNotFound возвращается, когда товар отсутствует в каталоге.
var ErrProductNotFound = errors.New("product not found")

// Product представляет товар каталога. Ядро витрины товары не изменяет,
// только читает их при разрешении ссылок корзины и избранного.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}
