package repositories

import "context"

// FavouritesRepository определяет интерфейс для операций с избранным пользователя.
type FavouritesRepository interface {
	// Add добавляет товар в избранное. Возвращает false, если товар уже
	// присутствовал и запись не выполнялась.
	Add(ctx context.Context, userID, productID string) (bool, error)

	// Remove удаляет товар из избранного. Запись в хранилище выполняется
	// безусловно, даже если товара в избранном не было.
	Remove(ctx context.Context, userID, productID string) error

	List(ctx context.Context, userID string) ([]string, error)
}
