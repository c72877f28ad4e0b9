// Package repository declares the order and address book stores the usecases
// depend on. The postgres, dynamo and memory packages implement them.
package repository

import (
	"context"

	"petverse/internal/domain/entity"
	"petverse/internal/errors"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	// ErrVersionConflict means another session saved the book after it was loaded.
	ErrVersionConflict = errors.New("address book version conflict")
)

// AddressRepository persists address books. A book is read and written as one unit
// so the single-default rule can be enforced across all of a user's addresses.
type AddressRepository interface {
	// LoadBook returns the user's addresses and the current book version.
	// A user without addresses gets an empty book at version 0.
	LoadBook(ctx context.Context, userID string) (*entity.AddressBook, error)

	// SaveBook writes every change recorded on the book in one atomic step and bumps
	// the version. It returns ErrVersionConflict when the stored version is no longer book.Version.
	SaveBook(ctx context.Context, book *entity.AddressBook) error
}
