package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AuthorCreateRequest
		wantErr bool
	}{
		{"valid", AuthorCreateRequest{Name: "John", Surname: "Doe"}, false},
		{"valid with books", AuthorCreateRequest{Name: "John", Surname: "Doe", Books: []*BookRequest{{Title: "T"}}}, false},
		{"empty name", AuthorCreateRequest{Surname: "Doe"}, true},
		{"empty surname", AuthorCreateRequest{Name: "John"}, true},
		{"name too long", AuthorCreateRequest{Name: strings.Repeat("x", MaxNameLength+1), Surname: "Doe"}, true},
		{"nil nested book", AuthorCreateRequest{Name: "John", Surname: "Doe", Books: []*BookRequest{nil}}, true},
		{"invalid nested book", AuthorCreateRequest{Name: "John", Surname: "Doe", Books: []*BookRequest{{PageCount: -5}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookCreateRequest_Validate(t *testing.T) {
	assert.NoError(t, BookCreateRequest{
		BookRequest: BookRequest{Title: "T", PageCount: 0},
		AuthorID:    uuid.NewString(),
	}.Validate())

	assert.Error(t, BookCreateRequest{BookRequest: BookRequest{Title: "T"}}.Validate())
	assert.Error(t, BookCreateRequest{BookRequest: BookRequest{Title: "T"}, AuthorID: "missing-id"}.Validate())
	assert.Error(t, BookCreateRequest{BookRequest: BookRequest{PageCount: -1}, AuthorID: uuid.NewString()}.Validate())
}

func TestAuthorCreateRequest_BooksAbsentVersusEmpty(t *testing.T) {
	var absent, null, empty AuthorCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","surname":"b"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","surname":"b","books":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","surname":"b","books":[]}`), &empty))

	assert.Nil(t, absent.Books)
	assert.Nil(t, null.Books)
	assert.NotNil(t, empty.Books)
	assert.Empty(t, empty.Books)
}
