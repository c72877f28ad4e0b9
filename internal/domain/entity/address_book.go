package entity

import (
	"slices"
	"time"

	"petverse/internal/errors"
)

// MaxAddressesPerUser caps the size of one address book.
const MaxAddressesPerUser = 20

var (
	// ErrAddressLimitReached is returned when a book is already full.
	ErrAddressLimitReached = errors.New("address limit reached")
	// ErrAddressNotInBook is returned when an address id does not belong to the book's user.
	ErrAddressNotInBook = errors.New("address does not belong to this user")
	// ErrDefaultInvariant is returned when a book holds anything but exactly one default.
	ErrDefaultInvariant = errors.New("address book must hold exactly one default address")
)

// AddressBook is the set of addresses of one user, versioned as a single unit.
// Every mutation keeps exactly one default while the book is non-empty; the
// persistence layer writes the touched records in one conditional step keyed on Version.
type AddressBook struct {
	UserID  string
	Version int64

	addresses []*Address
	touched   map[string]struct{}
	removed   []string
}

// NewAddressBook builds a book from stored records, ordered by creation time.
func NewAddressBook(userID string, version int64, addresses []*Address) *AddressBook {
	book := &AddressBook{
		UserID:    userID,
		Version:   version,
		addresses: make([]*Address, 0, len(addresses)),
		touched:   make(map[string]struct{}),
	}
	for _, addr := range addresses {
		book.addresses = append(book.addresses, addr.Clone())
	}
	slices.SortStableFunc(book.addresses, func(a, b *Address) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.AddressID < b.AddressID {
			return -1
		}
		if a.AddressID > b.AddressID {
			return 1
		}

		return 0
	})

	return book
}

// Addresses returns detached copies of the addresses in creation order.
func (b *AddressBook) Addresses() []*Address {
	out := make([]*Address, 0, len(b.addresses))
	for _, addr := range b.addresses {
		out = append(out, addr.Clone())
	}

	return out
}

// Len returns the number of addresses in the book.
func (b *AddressBook) Len() int {
	return len(b.addresses)
}

// Find returns a copy of the address with the given id.
func (b *AddressBook) Find(addressID string) (*Address, bool) {
	idx := b.indexOf(addressID)
	if idx < 0 {
		return nil, false
	}

	return b.addresses[idx].Clone(), true
}

// Default returns a copy of the default address.
func (b *AddressBook) Default() (*Address, bool) {
	for _, addr := range b.addresses {
		if addr.IsDefault {
			return addr.Clone(), true
		}
	}

	return nil, false
}

// Add appends a new address. The first address of a user is always the default;
// otherwise makeDefault moves the default flag onto the new address.
func (b *AddressBook) Add(addr *Address, makeDefault bool, now time.Time) (*Address, error) {
	if len(b.addresses) >= MaxAddressesPerUser {
		return nil, errors.Wrapf(ErrAddressLimitReached, "user %s already has %d addresses", b.UserID, len(b.addresses))
	}
	added := addr.Clone()
	added.UserID = b.UserID
	added.IsDefault = false
	if added.CreatedAt.IsZero() {
		added.CreatedAt = now
	}
	added.UpdatedAt = now
	b.addresses = append(b.addresses, added)
	b.touch(added.AddressID)

	preferred := ""
	if makeDefault || len(b.addresses) == 1 {
		preferred = added.AddressID
	}
	b.settleDefault(preferred, now)

	return added.Clone(), nil
}

// Update merges the patch into an existing address. The default flag is never touched.
func (b *AddressBook) Update(addressID string, patch AddressPatch, now time.Time) (*Address, error) {
	idx := b.indexOf(addressID)
	if idx < 0 {
		return nil, errors.WithStack(ErrAddressNotInBook)
	}

	addr := b.addresses[idx]
	if patch.Apply(addr) {
		addr.UpdatedAt = now
		b.touch(addressID)
	}

	return addr.Clone(), nil
}

// Remove deletes an address. When the default is removed the earliest remaining
// address is promoted in the same change set.
func (b *AddressBook) Remove(addressID string, now time.Time) error {
	idx := b.indexOf(addressID)
	if idx < 0 {
		return errors.WithStack(ErrAddressNotInBook)
	}

	b.addresses = slices.Delete(b.addresses, idx, idx+1)
	delete(b.touched, addressID)
	b.removed = append(b.removed, addressID)
	b.settleDefault("", now)

	return nil
}

// SetDefault makes the given address the only default.
func (b *AddressBook) SetDefault(addressID string, now time.Time) error {
	if b.indexOf(addressID) < 0 {
		return errors.WithStack(ErrAddressNotInBook)
	}
	b.settleDefault(addressID, now)

	return nil
}

// CheckInvariant verifies the single-default rule.
func (b *AddressBook) CheckInvariant() error {
	defaults := 0
	for _, addr := range b.addresses {
		if addr.IsDefault {
			defaults++
		}
	}
	if len(b.addresses) == 0 && defaults == 0 {
		return nil
	}
	if defaults != 1 {
		return errors.Wrapf(ErrDefaultInvariant, "user %s has %d defaults across %d addresses", b.UserID, defaults, len(b.addresses))
	}

	return nil
}

// Changes returns the records that must be written and the ids that must be deleted.
func (b *AddressBook) Changes() (upserts []*Address, deletes []string) {
	for _, addr := range b.addresses {
		if _, ok := b.touched[addr.AddressID]; ok {
			upserts = append(upserts, addr.Clone())
		}
	}

	return upserts, slices.Clone(b.removed)
}

// HasChanges reports whether the book differs from what was loaded.
func (b *AddressBook) HasChanges() bool {
	return len(b.touched) > 0 || len(b.removed) > 0
}

// settleDefault leaves exactly one default: preferred when given, else the current
// default, else the earliest address. Every flipped flag is recorded as a change.
func (b *AddressBook) settleDefault(preferred string, now time.Time) {
	if len(b.addresses) == 0 {
		return
	}

	target := preferred
	if target == "" {
		for _, addr := range b.addresses {
			if addr.IsDefault {
				target = addr.AddressID

				break
			}
		}
	}
	if target == "" {
		target = b.addresses[0].AddressID
	}

	for _, addr := range b.addresses {
		want := addr.AddressID == target
		if addr.IsDefault != want {
			addr.IsDefault = want
			addr.UpdatedAt = now
			b.touch(addr.AddressID)
		}
	}
}

func (b *AddressBook) touch(addressID string) {
	if b.touched == nil {
		b.touched = make(map[string]struct{})
	}
	b.touched[addressID] = struct{}{}
}

func (b *AddressBook) indexOf(addressID string) int {
	return slices.IndexFunc(b.addresses, func(a *Address) bool {
		return a.AddressID == addressID
	})
}
