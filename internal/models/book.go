package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a single record in a user's collection. UserID is stamped from
// the authenticated caller at creation and never changes afterwards.
type Book struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;index;not null" json:"user_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Author        string    `gorm:"size:255;not null" json:"author"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Year          int       `gorm:"not null" json:"year"`
	CoverImageURL string    `gorm:"size:1024" json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
