package usecase

import (
	"context"

	"petverse/internal/domain/entity"
)

// AddressInput holds the fields of a new address.
type AddressInput struct {
	Name         string
	Phone        string
	Email        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	AddressType  entity.AddressType
}

// AddressUsecase defines the address book use cases. Every mutation keeps exactly
// one default address per user while the user has any address.
type AddressUsecase interface {
	// ListAddresses returns the user's addresses in creation order
	ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error)

	// AddAddress creates an address. The first address of a user is always the default.
	AddAddress(ctx context.Context, userID string, input *AddressInput, makeDefault bool) (*entity.Address, error)

	// UpdateAddress merges the patch into an address without touching its default flag
	UpdateAddress(ctx context.Context, userID, addressID string, patch *entity.AddressPatch) (*entity.Address, error)

	// RemoveAddress deletes an address, promoting the earliest remaining one when the default goes
	RemoveAddress(ctx context.Context, userID, addressID string) error

	// SetDefaultAddress makes the address the user's only default
	SetDefaultAddress(ctx context.Context, userID, addressID string) (*entity.Address, error)

	// GetDefaultAddress returns the user's default address
	GetDefaultAddress(ctx context.Context, userID string) (*entity.Address, error)
}
