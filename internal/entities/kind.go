// Package entities defines the core value types shared across the service.
package entities

import (
	"strings"

	"github.com/forgebound/crafting-api/internal/errors"
)

// Kind identifies which registry an entity definition lives in
type Kind string

// Entity kinds
const (
	KindConsumable Kind = "consumable"
	KindWeapon     Kind = "weapon"
	KindArmor      Kind = "armor"
)

// Kinds returns all kinds in the fixed catalog scan order
func Kinds() []Kind {
	return []Kind{KindConsumable, KindWeapon, KindArmor}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the three known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindConsumable, KindWeapon, KindArmor:
		return true
	default:
		return false
	}
}

// ParseKind parses a kind name case-insensitively
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindConsumable):
		return KindConsumable, nil
	case string(KindWeapon):
		return KindWeapon, nil
	case string(KindArmor):
		return KindArmor, nil
	default:
		return "", errors.InvalidArgumentf("unknown entity kind %q", s)
	}
}
