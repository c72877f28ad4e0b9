// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// AddressType classifies a delivery address.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// IsValid checks if the AddressType is a known value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

// ParseAddressType maps free-form input to an AddressType, defaulting to home.
func ParseAddressType(raw string) AddressType {
	t := AddressType(strings.ToLower(strings.TrimSpace(raw)))
	if t.IsValid() {
		return t
	}
	if t == "" {
		return AddressTypeHome
	}

	return AddressTypeOther
}

// Address is a delivery address owned by a single user.
type Address struct {
	UserID       string      `json:"userId"`       // Owning identity, immutable.
	AddressID    string      `json:"addressId"`    // Unique within the owning user.
	Name         string      `json:"name"`         // Recipient name.
	Phone        string      `json:"phone"`        // Recipient phone.
	Email        string      `json:"email"`        // Recipient email.
	AddressLine1 string      `json:"addressLine1"` // Street and number.
	AddressLine2 string      `json:"addressLine2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"pincode"`
	AddressType  AddressType `json:"addressType"`
	IsDefault    bool        `json:"isDefault"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// MissingFields lists the required contact and location fields that are empty.
func (a *Address) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"phone", a.Phone},
		{"email", a.Email},
		{"addressLine1", a.AddressLine1},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.PostalCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

// Clone returns a detached copy of the address.
func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}
	cloned := *a

	return &cloned
}

// AddressPatch carries a partial update; nil fields are left untouched.
// The default flag is deliberately absent: it only changes through SetDefault.
type AddressPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	AddressType  *AddressType
}

// Apply merges the patch into the address and reports whether anything changed.
func (p AddressPatch) Apply(a *Address) bool {
	changed := false
	set := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}
	set(&a.Name, p.Name)
	set(&a.Phone, p.Phone)
	set(&a.Email, p.Email)
	set(&a.AddressLine1, p.AddressLine1)
	set(&a.AddressLine2, p.AddressLine2)
	set(&a.City, p.City)
	set(&a.State, p.State)
	set(&a.PostalCode, p.PostalCode)
	if p.AddressType != nil && a.AddressType != *p.AddressType {
		a.AddressType = *p.AddressType
		changed = true
	}

	return changed
}
