package favouritesusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gostorefront/internal/storefront/app"
	"gostorefront/internal/storefront/domain/entities"
)

func TestAddToFavourites(t *testing.T) {
	userID := "user-123"
	productID := "product-1"

	testUser := &entities.User{
		ID:       userID,
		Email:    "test@example.com",
		Username: "testuser",
	}

	testProduct := &entities.Product{ID: productID, Title: "Laptop Stand", PriceCents: 3290}

	t.Run("Успешное добавление товара в избранное", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		cartRepo := new(mockCartRepository)
		favRepo := new(mockFavouritesRepository)
		productCache := new(mockProductCache)

		productCache.On("Get", mock.Anything, productID).Return(testProduct, nil).Once()
		favRepo.On("Add", mock.Anything, userID, productID).Return(true, nil).Once()
		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		cartRepo.On("ListItems", mock.Anything, userID).Return([]entities.CartLine{}, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{productID}, nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, cartRepo, userRepo,
			new(mockProductRepository), productCache)

		view, err := favUseCase.AddToFavourites(context.Background(), userID, productID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, []string{productID}, view.Favourites)

		favRepo.AssertExpectations(t)
	})

	t.Run("Повторное добавление того же товара - no-op", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		cartRepo := new(mockCartRepository)
		favRepo := new(mockFavouritesRepository)
		productCache := new(mockProductCache)

		productCache.On("Get", mock.Anything, productID).Return(testProduct, nil).Once()
		favRepo.On("Add", mock.Anything, userID, productID).Return(false, nil).Once()
		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		cartRepo.On("ListItems", mock.Anything, userID).Return([]entities.CartLine{}, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{productID}, nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, cartRepo, userRepo,
			new(mockProductRepository), productCache)

		view, err := favUseCase.AddToFavourites(context.Background(), userID, productID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, []string{productID}, view.Favourites)

		favRepo.AssertExpectations(t)
		favRepo.AssertNumberOfCalls(t, "Add", 1)
	})

	t.Run("Ошибка - товар отсутствует в каталоге", func(t *testing.T) {
		favRepo := new(mockFavouritesRepository)
		productRepo := new(mockProductRepository)
		productCache := new(mockProductCache)

		productCache.On("Get", mock.Anything, "missing").Return(nil, nil).Once()
		productRepo.On("GetByID", mock.Anything, "missing").
			Return(nil, entities.ErrProductNotFound).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, new(mockCartRepository),
			new(mockUserRepository), productRepo, productCache)

		view, err := favUseCase.AddToFavourites(context.Background(), userID, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		assert.Nil(t, view)

		favRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ошибка - пустой идентификатор пользователя", func(t *testing.T) {
		favUseCase := app.NewFavouritesUseCase(new(mockFavouritesRepository),
			new(mockCartRepository), new(mockUserRepository),
			new(mockProductRepository), new(mockProductCache))

		view, err := favUseCase.AddToFavourites(context.Background(), "", productID)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyUserID)
		assert.Nil(t, view)
	})
}

func TestRemoveFromFavourites(t *testing.T) {
	userID := "user-123"
	productID := "product-1"

	testUser := &entities.User{ID: userID, Email: "test@example.com", Username: "testuser"}

	t.Run("Успешное удаление товара из избранного", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		cartRepo := new(mockCartRepository)
		favRepo := new(mockFavouritesRepository)

		favRepo.On("Remove", mock.Anything, userID, productID).Return(nil).Once()
		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		cartRepo.On("ListItems", mock.Anything, userID).Return([]entities.CartLine{}, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{}, nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, cartRepo, userRepo,
			new(mockProductRepository), new(mockProductCache))

		view, err := favUseCase.RemoveFromFavourites(context.Background(), userID, productID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Empty(t, view.Favourites)

		favRepo.AssertExpectations(t)
	})

	t.Run("Удаление отсутствующего товара не является ошибкой", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		cartRepo := new(mockCartRepository)
		favRepo := new(mockFavouritesRepository)

		favRepo.On("Remove", mock.Anything, userID, "never-added").Return(nil).Once()
		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		cartRepo.On("ListItems", mock.Anything, userID).Return([]entities.CartLine{}, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{}, nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, cartRepo, userRepo,
			new(mockProductRepository), new(mockProductCache))

		view, err := favUseCase.RemoveFromFavourites(context.Background(), userID, "never-added")

		require.NoError(t, err)
		require.NotNil(t, view)

		favRepo.AssertExpectations(t)
	})
}

func TestGetFavourites(t *testing.T) {
	userID := "user-123"

	testUser := &entities.User{ID: userID, Email: "test@example.com", Username: "testuser"}

	productA := entities.Product{ID: "product-a", Title: "Dock", PriceCents: 6490}
	productB := entities.Product{ID: "product-b", Title: "Mouse", PriceCents: 4590}

	t.Run("Успешное получение избранного с данными каталога", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		favRepo := new(mockFavouritesRepository)
		productRepo := new(mockProductRepository)
		productCache := new(mockProductCache)

		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{"product-a", "product-b"}, nil).Once()
		productCache.On("Get", mock.Anything, "product-a").Return(&productA, nil).Once()
		productCache.On("Get", mock.Anything, "product-b").Return(nil, nil).Once()
		productRepo.On("GetByIDs", mock.Anything, []string{"product-b"}).
			Return([]entities.Product{productB}, nil).Once()
		productCache.On("Set", mock.Anything, mock.Anything).Return(nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, new(mockCartRepository),
			userRepo, productRepo, productCache)

		products, err := favUseCase.GetFavourites(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "product-a", products[0].ID)
		assert.Equal(t, "product-b", products[1].ID)

		favRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("Пустое избранное", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		favRepo := new(mockFavouritesRepository)

		userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
		favRepo.On("List", mock.Anything, userID).Return([]string{}, nil).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, new(mockCartRepository),
			userRepo, new(mockProductRepository), new(mockProductCache))

		products, err := favUseCase.GetFavourites(context.Background(), userID)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Ошибка - пользователь удален", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		favRepo := new(mockFavouritesRepository)

		userRepo.On("FindByID", mock.Anything, userID).
			Return(nil, entities.ErrUserNotFound).Once()

		favUseCase := app.NewFavouritesUseCase(favRepo, new(mockCartRepository),
			userRepo, new(mockProductRepository), new(mockProductCache))

		products, err := favUseCase.GetFavourites(context.Background(), userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, products)

		favRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка - пустой идентификатор пользователя", func(t *testing.T) {
		favUseCase := app.NewFavouritesUseCase(new(mockFavouritesRepository),
			new(mockCartRepository), new(mockUserRepository),
			new(mockProductRepository), new(mockProductCache))

		products, err := favUseCase.GetFavourites(context.Background(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrEmptyUserID)
		assert.Nil(t, products)
	})
}
