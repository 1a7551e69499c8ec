package service

import (
	"context"
	"fmt"
	"time"

	"bookvault/internal/apperr"
	"bookvault/internal/models"
	"bookvault/internal/storage"
	"bookvault/internal/store"
)

// BookService owns all single-collection business rules, in particular
// the ownership checks on every read/update/delete.
type BookService struct {
	books    store.BookStore
	uploader storage.Uploader
}

func NewBookService(books store.BookStore, uploader storage.Uploader) *BookService {
	return &BookService{
		books:    books,
		uploader: uploader,
	}
}

// CreateBookInput carries the validated domain fields for a new book.
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	Year        int
}

// UpdateBookInput is a partial update; nil fields are left unchanged.
type UpdateBookInput struct {
	Title       *string
	Author      *string
	Description *string
	Year        *int
}

// CoverImage is an uploaded cover file held in memory for the request.
type CoverImage struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Create stamps the caller as owner unconditionally. When a cover image
// is supplied it is uploaded first, so a failed upload leaves no orphaned
// book row behind.
func (s *BookService) Create(ctx context.Context, callerID string, in CreateBookInput, image *CoverImage) (*models.Book, error) {
	var coverURL string
	if image != nil {
		if s.uploader == nil {
			return nil, fmt.Errorf("%w: object storage not configured", apperr.ErrUpload)
		}
		key := fmt.Sprintf("books/%d-%s", time.Now().UnixMilli(), image.Filename)
		url, err := s.uploader.Upload(ctx, image.Data, image.ContentType, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrUpload, err)
		}
		coverURL = url
	}

	book := &models.Book{
		UserID:        callerID,
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		Year:          in.Year,
		CoverImageURL: coverURL,
	}
	if err := s.books.InsertBook(ctx, book); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return book, nil
}

// Get loads a book and asserts the caller owns it. This is the single
// ownership check reused by Update and Delete.
func (s *BookService) Get(ctx context.Context, id, callerID string) (*models.Book, error) {
	book, err := s.books.FindBookByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if book == nil {
		return nil, apperr.ErrNotFound
	}
	if book.UserID != callerID {
		return nil, apperr.ErrAccessDenied
	}
	return book, nil
}

// List returns the caller's books only; isolation happens in the query,
// not by post-filtering.
func (s *BookService) List(ctx context.Context, callerID string) ([]models.Book, error) {
	books, err := s.books.FindBooksByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return books, nil
}

// Update checks ownership via Get before writing. Ownership never changes
// after creation, so the read-then-write pair needs no locking.
func (s *BookService) Update(ctx context.Context, id, callerID string, in UpdateBookInput) (*models.Book, error) {
	book, err := s.Get(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Year != nil {
		book.Year = *in.Year
	}

	if err := s.books.UpdateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return book, nil
}

// Delete checks ownership via Get before removing the row.
func (s *BookService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.Get(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.books.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// CollectionStats summarizes the caller's collection.
type CollectionStats struct {
	Total  int          `json:"total"`
	ByYear map[int]int  `json:"by_year"`
	Latest *models.Book `json:"latest,omitempty"`
}

// Stats computes collection totals from an owner-scoped query.
func (s *BookService) Stats(ctx context.Context, callerID string) (*CollectionStats, error) {
	books, err := s.List(ctx, callerID)
	if err != nil {
		return nil, err
	}

	stats := &CollectionStats{
		Total:  len(books),
		ByYear: make(map[int]int),
	}
	for i := range books {
		stats.ByYear[books[i].Year]++
	}
	if len(books) > 0 {
		// List orders by created_at desc
		stats.Latest = &books[0]
	}
	return stats, nil
}
