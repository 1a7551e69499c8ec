// Package store is the narrow data-provider contract the services depend
// on. Absence of a row is a nil result, not an error; errors signal a
// provider failure.
package store

import (
	"context"

	"bookvault/internal/models"
)

type UserStore interface {
	// FindUserByEmail matches the stored email exactly (case-sensitive).
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
}

type BookStore interface {
	InsertBook(ctx context.Context, book *models.Book) error
	FindBooksByOwner(ctx context.Context, ownerID string) ([]models.Book, error)
	FindBookByID(ctx context.Context, id string) (*models.Book, error)
	UpdateBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id string) error
}

// Store is the full provider contract consumed by the services.
type Store interface {
	UserStore
	BookStore
}
