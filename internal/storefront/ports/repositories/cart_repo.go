package repositories

import (
	"context"

	"gostorefront/internal/storefront/domain/entities"
)

// CartRepository определяет интерфейс для операций с корзиной пользователя.
// Все мутации атомарны на уровне хранилища: параллельные запросы одного
// пользователя сериализуются базой данных, а не приложением.
type CartRepository interface {
	// AddItem добавляет товар в корзину, суммируя количество с уже
	// существующей позицией того же товара.
	AddItem(ctx context.Context, userID, productID string, quantity int32) error

	// RemoveItem уменьшает количество позиции на quantity и удаляет ее,
	// когда остаток становится неположительным. При quantity <= 0 позиция
	// удаляется безусловно. Возвращает entities.ErrCartLineNotFound,
	// если позиция отсутствует.
	RemoveItem(ctx context.Context, userID, productID string, quantity int32) error

	ListItems(ctx context.Context, userID string) ([]entities.CartLine, error)
}
