package logic

import (
	"sort"
	"strconv"
	"strings"
)

// ModifierOption is an opaque (id, name, price) tuple selected from the menu.
type ModifierOption struct {
	ID    string
	Name  string
	Price float64
}

// ModifierSelection is the options chosen within one modifier category.
type ModifierSelection struct {
	CategoryID   string
	CategoryName string
	Options      []ModifierOption
}

// Size is an optional size choice with its surcharge.
type Size struct {
	ID    string
	Name  string
	Price float64
}

// AddOn is an optional extra with its surcharge.
type AddOn struct {
	ID    string
	Name  string
	Price float64
}

// Customizations is everything selected for a line that can change its unit price.
type Customizations struct {
	Modifiers []ModifierSelection
	Notes     string
	Size      *Size
	AddOns    []AddOn
}

// IsEmpty reports whether nothing has been selected yet.
func (c Customizations) IsEmpty() bool {
	if c.Notes != "" || c.Size != nil || len(c.AddOns) > 0 {
		return false
	}
	for _, m := range c.Modifiers {
		if len(m.Options) > 0 {
			return false
		}
	}
	return true
}

// Surcharge is the per-unit amount the customizations add to the catalog price.
func (c Customizations) Surcharge() float64 {
	var sum float64
	for _, m := range c.Modifiers {
		for _, o := range m.Options {
			sum += o.Price
		}
	}
	if c.Size != nil {
		sum += c.Size.Price
	}
	for _, a := range c.AddOns {
		sum += a.Price
	}
	return sum
}

// OrderedKey encodes the configuration preserving selection order. Two
// configurations share a key iff SameConfigurationOrdered holds.
func (c Customizations) OrderedKey() string {
	var b strings.Builder
	b.WriteString("size=")
	if c.Size != nil {
		b.WriteString(strconv.Quote(c.Size.ID))
	}
	b.WriteString("|notes=")
	b.WriteString(strconv.Quote(c.Notes))
	b.WriteString("|addons=")
	for _, a := range c.AddOns {
		b.WriteString(strconv.Quote(a.ID))
		b.WriteByte(',')
	}
	b.WriteString("|mods=")
	for _, m := range c.Modifiers {
		b.WriteString(strconv.Quote(m.CategoryID))
		b.WriteByte(':')
		for _, o := range m.Options {
			b.WriteString(strconv.Quote(o.ID))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Clone returns a deep copy.
func (c Customizations) Clone() Customizations {
	out := Customizations{Notes: c.Notes}
	if c.Size != nil {
		s := *c.Size
		out.Size = &s
	}
	if c.AddOns != nil {
		out.AddOns = append([]AddOn(nil), c.AddOns...)
	}
	if c.Modifiers != nil {
		out.Modifiers = make([]ModifierSelection, len(c.Modifiers))
		for i, m := range c.Modifiers {
			out.Modifiers[i] = ModifierSelection{
				CategoryID:   m.CategoryID,
				CategoryName: m.CategoryName,
				Options:      append([]ModifierOption(nil), m.Options...),
			}
		}
	}
	return out
}

// SameConfigurationUnordered compares size, notes, the multiset of add-on ids
// and the multiset of (category, option) selections. Selection order is
// ignored. Used when adding items from the menu.
func SameConfigurationUnordered(a, b Customizations) bool {
	if sizeID(a.Size) != sizeID(b.Size) || a.Notes != b.Notes {
		return false
	}
	if !sameMultiset(addOnIDs(a.AddOns), addOnIDs(b.AddOns)) {
		return false
	}
	return sameMultiset(selectionPairs(a.Modifiers), selectionPairs(b.Modifiers))
}

// SameConfigurationOrdered is strict structural equality: category order and
// option order within a category both matter. Used by the modifier path
// (draft confirmation and item edits).
func SameConfigurationOrdered(a, b Customizations) bool {
	if sizeID(a.Size) != sizeID(b.Size) || a.Notes != b.Notes {
		return false
	}
	if len(a.AddOns) != len(b.AddOns) || len(a.Modifiers) != len(b.Modifiers) {
		return false
	}
	for i := range a.AddOns {
		if a.AddOns[i].ID != b.AddOns[i].ID {
			return false
		}
	}
	for i := range a.Modifiers {
		ma, mb := a.Modifiers[i], b.Modifiers[i]
		if ma.CategoryID != mb.CategoryID || len(ma.Options) != len(mb.Options) {
			return false
		}
		for j := range ma.Options {
			if ma.Options[j].ID != mb.Options[j].ID {
				return false
			}
		}
	}
	return true
}

// SameLine reports whether two lines are the same purchasable line under the
// given comparison strategy.
func SameLine(a, b LineItem, same func(a, b Customizations) bool) bool {
	return a.CatalogItemID == b.CatalogItemID && same(a.Customizations, b.Customizations)
}

func sizeID(s *Size) string {
	if s == nil {
		return ""
	}
	return "\x00" + s.ID
}

func addOnIDs(addOns []AddOn) []string {
	ids := make([]string, len(addOns))
	for i, a := range addOns {
		ids[i] = a.ID
	}
	return ids
}

func selectionPairs(mods []ModifierSelection) []string {
	var pairs []string
	for _, m := range mods {
		for _, o := range m.Options {
			pairs = append(pairs, strconv.Quote(m.CategoryID)+"/"+strconv.Quote(o.ID))
		}
	}
	return pairs
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
