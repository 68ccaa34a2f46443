package model

import (
	"time"

	"github.com/google/uuid"
)

// FAQ is a question/answer pair shown on the storefront help page.
type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Active    bool      `json:"active" db:"active"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FAQInput carries the admin-editable fields of a FAQ.
// A nil SortOrder on create appends the FAQ after the current last one.
type FAQInput struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Active    bool   `json:"active"`
	SortOrder *int   `json:"sortOrder,omitempty" validate:"omitempty,min=1"`
}
