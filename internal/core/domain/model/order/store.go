package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Store identifies the bakery location an order belongs to.
type Store string

const (
	// StoreHighStreet is the flagship bakery and the documented default:
	// rows with a missing or unrecognized store normalize here rather than
	// propagating an invalid value.
	StoreHighStreet Store = "high_street"

	// StoreRiverside is the second bakery location.
	StoreRiverside Store = "riverside"
)

// DefaultStore is where unrecognized store values normalize to.
const DefaultStore = StoreHighStreet

// getKnownStores returns the set of valid store identifiers.
func getKnownStores() map[Store]struct{} {
	return map[Store]struct{}{
		StoreHighStreet: {},
		StoreRiverside:  {},
	}
}

// NormalizeStore maps free-text store input onto the known store set.
// Unrecognized or empty values fall back to DefaultStore.
func NormalizeStore(raw string) Store {
	candidate := Store(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := getKnownStores()[candidate]; ok {
		return candidate
	}
	return DefaultStore
}

// Validate checks membership in the known store set.
func (s Store) Validate() error {
	if _, ok := getKnownStores()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("store", fmt.Errorf("%q is not a known store", string(s)))
	}
	return nil
}

// String returns the store identifier.
func (s Store) String() string {
	return string(s)
}
