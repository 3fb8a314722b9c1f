package services

import (
	"time"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

type CartService struct {
	catalog CatalogStore
	carts   CartStore
}

func NewCartService(catalog CatalogStore, carts CartStore) *CartService {
	return &CartService{catalog: catalog, carts: carts}
}

// AddItem adds quantity of (product, size) to the user's cart. An existing
// identical line is merged by incrementing its quantity; a new line captures
// the SizeOption price at add time.
func (s *CartService) AddItem(userID string, productID uint, size string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, validationErr("quantity must be at least 1")
	}
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFoundErr("product %d not found", productID)
	}
	option, err := s.catalog.SizeOption(productID, size)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, notFoundErr("size %q is not available for %s", size, product.Name)
	}

	existing, err := s.carts.FindLine(userID, productID, size)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := s.carts.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	price := option.Price
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		Price:     &price,
		AddedAt:   time.Now(),
	}
	if err := s.carts.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity of a cart line owned by userID.
func (s *CartService) UpdateQuantity(userID string, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, validationErr("quantity must be at least 1")
	}
	item, err := s.carts.ItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundErr("cart item %d not found", itemID)
	}
	if item.UserID != userID {
		return nil, forbiddenErr("cart item belongs to another user")
	}
	item.Quantity = quantity
	if err := s.carts.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(userID string, itemID uint) error {
	item, err := s.carts.ItemByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundErr("cart item %d not found", itemID)
	}
	if item.UserID != userID {
		return forbiddenErr("cart item belongs to another user")
	}
	return s.carts.DeleteItem(itemID)
}

// Items returns the user's cart lines with the grand total.
func (s *CartService) Items(userID string) ([]models.CartItem, float64, error) {
	items, err := s.carts.ItemsForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	return items, ComputeTotal(items), nil
}

// Clear empties the user's cart. Clearing an empty cart is a no-op.
func (s *CartService) Clear(userID string) error {
	return s.carts.ClearUser(userID)
}

// LinePrice resolves the unit price of a cart line. Lines predating price
// capture have no stored price, so it falls back to the matching size option
// and then the product base price.
func LinePrice(item models.CartItem) float64 {
	if item.Price != nil {
		return *item.Price
	}
	for _, opt := range item.Product.SizeOptions {
		if opt.Size == item.Size {
			return opt.Price
		}
	}
	return item.Product.Price
}

// ComputeTotal sums unit price x quantity over all lines.
func ComputeTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += LinePrice(item) * float64(item.Quantity)
	}
	return total
}
