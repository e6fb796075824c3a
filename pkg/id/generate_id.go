package id

import (
	"strings"

	"github.com/google/uuid"
)

// Entity prefixes. Every public identifier is prefix + 32 lowercase hex chars.
const (
	PrefixFinancialRequest = "fin"
	PrefixTender           = "ten"
	PrefixClient           = "cli"
	PrefixUser             = "usr"
	PrefixOEM              = "oem"
	PrefixProduct          = "prd"
	PrefixDepartment       = "dep"
	PrefixDesignation      = "des"
	PrefixBidTemplate      = "bid"
)

// NewID32 returns exactly 32 hex characters (a random v4 uuid without separators).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New returns prefix followed by NewID32, e.g. "fin3f9a6a1b3d544fbe8b3a6b3e8d6b2c88".
func New(prefix string) string { return prefix + NewID32() }
