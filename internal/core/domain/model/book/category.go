package book

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Category classifies a book within the catalog.
// Only the categories returned by AllCategories are valid.
type Category string

const (
	Fiction    Category = "Fiction"
	NonFiction Category = "Non-fiction"
	Science    Category = "Science"
	Comics     Category = "Comics"
	Romance    Category = "Romance"
	Thriller   Category = "Thriller"
	Fantasy    Category = "Fantasy"
	Children   Category = "Children"
)

// AllCategories returns every valid catalog category.
func AllCategories() []Category {
	return []Category{Fiction, NonFiction, Science, Comics, Romance, Thriller, Fantasy, Children}
}

// CategoryFromString parses a category name into a Category.
// Returns an error when the name does not match a known category.
func CategoryFromString(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the category is one of the known catalog categories.
func (c Category) Validate() error {
	_, err := CategoryFromString(string(c))
	return err
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
