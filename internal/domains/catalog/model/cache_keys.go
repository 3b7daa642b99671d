package model

import "github.com/google/uuid"

const (
	authorCacheKeyPrefix = "catalog:author:"
	bookCacheKeyPrefix   = "catalog:book:"
)

func AuthorCacheKey(id uuid.UUID) string { return authorCacheKeyPrefix + id.String() }
func BookCacheKey(id uuid.UUID) string   { return bookCacheKeyPrefix + id.String() }

// BookCachePattern matches every cached book.
const BookCachePattern = bookCacheKeyPrefix + "*"
