package storage

import (
	"context"
	"time"

	"github.com/simstore/build-advisor/internal/models"
)

// Repository defines the interface for shop persistence
type Repository interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error

	// Products
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]*models.Product, error)

	// Cart
	AddCartItem(ctx context.Context, item *models.CartItem) error
	GetCartItems(ctx context.Context, userID string) ([]*models.CartItem, error)
	DeleteCartItem(ctx context.Context, id string) error
	DeleteCartItemsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Orders
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)

	// Health
	Ping(ctx context.Context) error
	Close() error
}
