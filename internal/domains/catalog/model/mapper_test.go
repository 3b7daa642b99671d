package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAuthorFullResponse_Example(t *testing.T) {
	a := &Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	b := &Book{ID: uuid.New(), Title: "T1", Description: "D1", PageCount: 300, AuthorID: a.ID}
	a.Books = []*Book{b}

	got := ToAuthorFullResponse(a)

	assert.Equal(t, &AuthorFullResponse{
		ID:      a.ID.String(),
		Name:    "John",
		Surname: "Doe",
		Books:   []*BookResponse{{ID: b.ID.String(), Title: "T1", Description: "D1", PageCount: 300}},
	}, got)
}

func TestToAuthorFullResponse_CollectionStates(t *testing.T) {
	a := &Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	assert.Nil(t, ToAuthorFullResponse(a).Books)

	a.Books = []*Book{}
	books := ToAuthorFullResponse(a).Books
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestToBookFullResponse(t *testing.T) {
	owner := &Author{ID: uuid.New(), Name: "Jane", Surname: "Roe", Books: []*Book{{Title: "ignored"}}}
	b := &Book{ID: uuid.New(), Title: "T", AuthorID: owner.ID, Author: owner}

	got := ToBookFullResponse(b)

	require.NotNil(t, got.Author)
	assert.Equal(t, AuthorResponse{ID: owner.ID.String(), Name: "Jane", Surname: "Roe"}, *got.Author)

	b.Author = nil
	assert.Nil(t, ToBookFullResponse(b).Author)
}

func TestNilProjections(t *testing.T) {
	assert.Nil(t, ToAuthorResponse(nil))
	assert.Nil(t, ToAuthorFullResponse(nil))
	assert.Nil(t, ToBookResponse(nil))
	assert.Nil(t, ToBookFullResponse(nil))
	assert.Empty(t, ToBookResponses(nil))
}

func TestNewBooksForAuthor(t *testing.T) {
	a := NewAuthorFromRequest(&AuthorCreateRequest{Name: "John", Surname: "Doe"})
	require.NotEqual(t, uuid.Nil, a.ID)
	assert.Nil(t, a.Books)

	assert.Nil(t, NewBooksForAuthor(a, nil))

	empty := NewBooksForAuthor(a, []*BookRequest{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	books := NewBooksForAuthor(a, []*BookRequest{
		{Title: "T1", Description: "D1", PageCount: 1},
		{Title: "T2", Description: "D2", PageCount: 2},
	})
	require.Len(t, books, 2)
	assert.NotEqual(t, books[0].ID, books[1].ID)
	for i, b := range books {
		assert.Equal(t, a.ID, b.AuthorID)
		assert.Equal(t, i+1, b.PageCount)
		assert.Nil(t, b.Author)
	}
}

func TestApplyBookRequest(t *testing.T) {
	owner := uuid.New()
	b := &Book{ID: uuid.New(), Title: "Old", Description: "Old", PageCount: 9, AuthorID: owner}
	id := b.ID

	ApplyBookRequest(b, &BookRequest{Title: "New", PageCount: 0})

	assert.Equal(t, id, b.ID)
	assert.Equal(t, owner, b.AuthorID)
	assert.Equal(t, "New", b.Title)
	assert.Equal(t, "", b.Description)
	assert.Equal(t, 0, b.PageCount)
}
