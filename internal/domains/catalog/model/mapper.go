package model

import (
	"github.com/google/uuid"
)

// ============================================
// ENTITY -> RESPONSE
// ============================================

// ToAuthorResponse projects an author without touching its books.
func ToAuthorResponse(a *Author) *AuthorResponse {
	if a == nil {
		return nil
	}
	return &AuthorResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Surname: a.Surname,
	}
}

// ToAuthorFullResponse projects an author with its books mapped shallow.
// A nil collection stays nil.
func ToAuthorFullResponse(a *Author) *AuthorFullResponse {
	if a == nil {
		return nil
	}

	resp := &AuthorFullResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Surname: a.Surname,
	}
	if a.Books != nil {
		resp.Books = make([]*BookResponse, 0, len(a.Books))
		for _, b := range a.Books {
			resp.Books = append(resp.Books, ToBookResponse(b))
		}
	}
	return resp
}

func ToBookResponse(b *Book) *BookResponse {
	if b == nil {
		return nil
	}
	return &BookResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		PageCount:   b.PageCount,
	}
}

// ToBookFullResponse projects a book with its owner mapped shallow.
// Author is nil when the owner row no longer exists.
func ToBookFullResponse(b *Book) *BookFullResponse {
	if b == nil {
		return nil
	}
	return &BookFullResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		PageCount:   b.PageCount,
		Author:      ToAuthorResponse(b.Author),
	}
}

func ToAuthorResponses(authors []*Author) []*AuthorResponse {
	out := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = ToAuthorResponse(a)
	}
	return out
}

func ToAuthorFullResponses(authors []*Author) []*AuthorFullResponse {
	out := make([]*AuthorFullResponse, len(authors))
	for i, a := range authors {
		out[i] = ToAuthorFullResponse(a)
	}
	return out
}

func ToBookResponses(books []*Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = ToBookResponse(b)
	}
	return out
}

func ToBookFullResponses(books []*Book) []*BookFullResponse {
	out := make([]*BookFullResponse, len(books))
	for i, b := range books {
		out[i] = ToBookFullResponse(b)
	}
	return out
}

// ============================================
// REQUEST -> ENTITY
// ============================================

// NewAuthorFromRequest builds a transient author with a fresh id.
// Nested books are not attached here, see NewBooksForAuthor.
func NewAuthorFromRequest(req *AuthorCreateRequest) *Author {
	return &Author{
		ID:      uuid.New(),
		Name:    req.Name,
		Surname: req.Surname,
	}
}

// NewBookFromRequest builds a transient book with a fresh id and no owner.
func NewBookFromRequest(req *BookRequest) *Book {
	return &Book{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		PageCount:   req.PageCount,
	}
}

// NewBooksForAuthor maps nested book requests and wires each one to author.
// nil in, nil out; an empty list yields an empty, non-nil slice.
func NewBooksForAuthor(author *Author, reqs []*BookRequest) []*Book {
	if reqs == nil {
		return nil
	}

	books := make([]*Book, 0, len(reqs))
	for _, req := range reqs {
		b := NewBookFromRequest(req)
		b.AuthorID = author.ID
		books = append(books, b)
	}
	return books
}

// ApplyBookRequest overwrites the scalar fields of b. The owner is left untouched.
func ApplyBookRequest(b *Book, req *BookRequest) {
	b.Title = req.Title
	b.Description = req.Description
	b.PageCount = req.PageCount
}
