package dto

import (
	"time"

	"gostorefront/internal/storefront/domain/entities"
)

// CartMutationRequest содержит данные мутации корзины. Количество -
// указатель, чтобы отличать отсутствующее поле от явного нуля: явный ноль
// при добавлении отклоняется валидацией, а не подменяется единицей.
type CartMutationRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int32 `json:"quantity,omitempty"`
}

// AddQuantity возвращает количество для добавления в корзину.
// Отсутствие поля означает одну единицу товара.
func (r *CartMutationRequest) AddQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// RemoveQuantity возвращает количество для списания из корзины.
// Отсутствие поля означает удаление позиции целиком.
func (r *CartMutationRequest) RemoveQuantity() int32 {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}

// FavouriteRequest содержит данные мутации избранного.
type FavouriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartLineResponse - позиция корзины в ответе API.
type CartLineResponse struct {
	ProductID string    `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserViewResponse - пользователь с корзиной и избранным, возвращаемый
// мутирующими операциями корзины и избранного.
type UserViewResponse struct {
	UserID     string             `json:"user_id"`
	Email      string             `json:"email"`
	Username   string             `json:"username"`
	Img        string             `json:"img,omitempty"`
	Cart       []CartLineResponse `json:"cart"`
	Favourites []string           `json:"favourites"`
}

// PlaceOrderRequest содержит данные для оформления заказа.
type PlaceOrderRequest struct {
	Products   []OrderItemRequest `json:"products" validate:"required,min=1"`
	Address    string             `json:"address" validate:"required"`
	TotalCents int64              `json:"total_cents" validate:"required"`
}

// OrderItemRequest - позиция оформляемого заказа.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int32  `json:"quantity" validate:"required,min=1"`
}

// NewUserViewResponse собирает ответ из доменного представления пользователя.
func NewUserViewResponse(view *entities.UserView) *UserViewResponse {
	cart := make([]CartLineResponse, 0, len(view.Cart))
	for _, line := range view.Cart {
		cart = append(cart, CartLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UpdatedAt: line.UpdatedAt,
		})
	}

	favourites := view.Favourites
	if favourites == nil {
		favourites = []string{}
	}

	return &UserViewResponse{
		UserID:     view.User.ID,
		Email:      view.User.Email,
		Username:   view.User.Username,
		Img:        view.User.Img,
		Cart:       cart,
		Favourites: favourites,
	}
}
