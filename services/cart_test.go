package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shubrajit22/Zestwear-sub000/mocks"
	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

func cartFixtures() (*mocks.MockCatalogStore, *mocks.MockCartStore, *services.CartService) {
	catalog := new(mocks.MockCatalogStore)
	carts := new(mocks.MockCartStore)
	return catalog, carts, services.NewCartService(catalog, carts)
}

func TestAddItemCapturesSizePrice(t *testing.T) {
	catalog, carts, svc := cartFixtures()

	catalog.On("ProductByID", uint(7)).Return(&models.Product{ID: 7, Name: "School Shirt", Price: 300}, nil)
	catalog.On("SizeOption", uint(7), "M").Return(&models.SizeOption{ProductID: 7, Size: "M", Price: 450}, nil)
	carts.On("FindLine", "u1", uint(7), "M").Return(nil, nil)
	carts.On("Save", mock.MatchedBy(func(item *models.CartItem) bool {
		return item.UserID == "u1" && item.ProductID == 7 && item.Size == "M" &&
			item.Quantity == 2 && item.Price != nil && *item.Price == 450
	})).Return(nil)

	item, err := svc.AddItem("u1", 7, "M", 2)
	require.NoError(t, err)
	require.NotNil(t, item.Price)
	assert.Equal(t, 450.0, *item.Price)
	carts.AssertExpectations(t)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	catalog, carts, svc := cartFixtures()

	price := 450.0
	existing := &models.CartItem{ID: 3, UserID: "u1", ProductID: 7, Size: "M", Quantity: 1, Price: &price}

	catalog.On("ProductByID", uint(7)).Return(&models.Product{ID: 7, Name: "School Shirt"}, nil)
	catalog.On("SizeOption", uint(7), "M").Return(&models.SizeOption{ProductID: 7, Size: "M", Price: 450}, nil)
	carts.On("FindLine", "u1", uint(7), "M").Return(existing, nil)
	carts.On("Save", existing).Return(nil)

	item, err := svc.AddItem("u1", 7, "M", 2)
	require.NoError(t, err)
	assert.Equal(t, uint(3), item.ID)
	assert.Equal(t, 3, item.Quantity)
	carts.AssertExpectations(t)
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	_, _, svc := cartFixtures()

	_, err := svc.AddItem("u1", 7, "M", 0)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAddItemUnknownProduct(t *testing.T) {
	catalog, _, svc := cartFixtures()

	catalog.On("ProductByID", uint(99)).Return(nil, nil)

	_, err := svc.AddItem("u1", 99, "M", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddItemUnknownSize(t *testing.T) {
	catalog, _, svc := cartFixtures()

	catalog.On("ProductByID", uint(7)).Return(&models.Product{ID: 7, Name: "School Shirt"}, nil)
	catalog.On("SizeOption", uint(7), "XS").Return(nil, nil)

	_, err := svc.AddItem("u1", 7, "XS", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateQuantityRejectsOtherUsersLine(t *testing.T) {
	_, carts, svc := cartFixtures()

	carts.On("ItemByID", uint(3)).Return(&models.CartItem{ID: 3, UserID: "someone-else"}, nil)

	_, err := svc.UpdateQuantity("u1", 3, 5)
	assert.ErrorIs(t, err, services.ErrForbidden)
	carts.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRemoveItemUnknownLine(t *testing.T) {
	_, carts, svc := cartFixtures()

	carts.On("ItemByID", uint(42)).Return(nil, nil)

	err := svc.RemoveItem("u1", 42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestComputeTotalUsesCapturedPrice(t *testing.T) {
	price := 500.0
	items := []models.CartItem{
		{Quantity: 2, Price: &price},
	}
	assert.Equal(t, 1000.0, services.ComputeTotal(items))
}

func TestComputeTotalFallsBackToSizeOptionThenBasePrice(t *testing.T) {
	withSize := models.CartItem{
		Size:     "L",
		Quantity: 1,
		Product: models.Product{
			Price: 300,
			SizeOptions: []models.SizeOption{
				{Size: "M", Price: 450},
				{Size: "L", Price: 475},
			},
		},
	}
	baseOnly := models.CartItem{
		Size:     "XL",
		Quantity: 2,
		Product:  models.Product{Price: 300},
	}

	assert.Equal(t, 475.0, services.LinePrice(withSize))
	assert.Equal(t, 300.0, services.LinePrice(baseOnly))
	assert.Equal(t, 1075.0, services.ComputeTotal([]models.CartItem{withSize, baseOnly}))
}
