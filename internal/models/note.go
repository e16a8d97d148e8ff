package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a user-owned text entity. UserID holds the Firebase uid of the
// owner; it is an opaque string, not a local foreign key. Notes are hard
// deleted, there is no soft-delete or versioning.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:128;not null;index" json:"userId"`
	Title     *string   `gorm:"size:150" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
