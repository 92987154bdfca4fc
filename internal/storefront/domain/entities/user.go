// Package entities определяет доменные сущности витрины магазина.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must contain at least one letter and one digit")
	ErrUserNotFound     = errors.New("user not found")
)

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string
	Email        string
	Username     string
	Img          string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView - пользователь вместе с его корзиной и избранным,
// как он возвращается из мутирующих операций.
type UserView struct {
	User       User
	Cart       []CartLine
	Favourites []string
}
