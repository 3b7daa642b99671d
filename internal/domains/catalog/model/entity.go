package model

import (
	"time"

	"github.com/google/uuid"
)

// Author owns zero or more Books.
// Books == nil means the collection was not loaded (or not supplied);
// an empty, non-nil slice means the author has no books.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Surname   string    `json:"surname" db:"surname"`
	Books     []*Book   `json:"books,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Book references its owner through AuthorID.
// Author is only filled by lookups that join the owner, and never carries Books.
type Book struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	PageCount   int       `json:"page_count" db:"page_count"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	Author      *Author   `json:"author,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
