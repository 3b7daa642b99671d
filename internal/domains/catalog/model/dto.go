package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxNameLength  = 255
	MaxTitleLength = 255
)

// BookRequest carries the scalar fields of a book.
// Nested inside AuthorCreateRequest it has no author id: the owner is the enclosing author.
type BookRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PageCount   int    `json:"pageCount"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&r.PageCount, validation.Min(0).Error("page count must not be negative")),
	)
}

// BookCreateRequest - POST /books, PUT /books/:id
type BookCreateRequest struct {
	BookRequest
	AuthorID string `json:"authorId"`
}

func (r BookCreateRequest) Validate() error {
	if err := r.BookRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			is.UUID.Error("author id must be a valid UUID"),
		),
	)
}

// AuthorCreateRequest - POST /authors, PUT /authors/:id
// Books == nil (field absent or null) is distinct from an empty list.
type AuthorCreateRequest struct {
	Name    string         `json:"name"`
	Surname string         `json:"surname"`
	Books   []*BookRequest `json:"books"`
}

func (r AuthorCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, MaxNameLength)),
		validation.Field(&r.Surname, validation.Required.Error("surname is required"), validation.Length(1, MaxNameLength)),
		validation.Field(&r.Books, validation.Each(validation.NotNil)),
	)
}

// AuthorResponse is the shallow author view.
type AuthorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// AuthorFullResponse embeds the author's books, each rendered shallow.
type AuthorFullResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Surname string          `json:"surname"`
	Books   []*BookResponse `json:"books"`
}

// BookResponse is the shallow book view.
type BookResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PageCount   int    `json:"pageCount"`
}

// BookFullResponse embeds the owning author rendered shallow.
type BookFullResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PageCount   int             `json:"pageCount"`
	Author      *AuthorResponse `json:"author"`
}
