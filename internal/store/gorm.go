package store

import (
	"context"
	"errors"
	"fmt"

	"bookvault/internal/models"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *GormStore) InsertUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *GormStore) InsertBook(ctx context.Context, book *models.Book) error {
	if err := s.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (s *GormStore) FindBooksByOwner(ctx context.Context, ownerID string) ([]models.Book, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("find books by owner: %w", err)
	}
	return books, nil
}

func (s *GormStore) FindBookByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return &book, nil
}

func (s *GormStore) UpdateBook(ctx context.Context, book *models.Book) error {
	if err := s.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteBook(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{}).Error; err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
