package common

import (
	"strings"

	"github.com/google/uuid"
)

// LineItemNamespace is the UUID namespace for deterministic line item ids.
var LineItemNamespace = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

// DraftItemPrefix namespaces draft line ids so they never collide with a
// confirmed line id, which is always a bare UUID.
const DraftItemPrefix = "draft:"

// NewOrderID returns a fresh random order id. Order ids are never reused.
func NewOrderID() string {
	return uuid.NewString()
}

// LineItemID derives the id of a confirmed line from its catalog item and a
// canonical encoding of its customizations. Identical configurations collide
// into the same id.
func LineItemID(catalogItemID, configurationKey string) string {
	return uuid.NewSHA1(LineItemNamespace, []byte(catalogItemID+"\x00"+configurationKey)).String()
}

// NewDraftItemID returns a namespaced id for a line still being configured.
func NewDraftItemID() string {
	return DraftItemPrefix + uuid.NewString()
}

// IsDraftItemID reports whether id was produced by NewDraftItemID.
func IsDraftItemID(id string) bool {
	return strings.HasPrefix(id, DraftItemPrefix)
}
