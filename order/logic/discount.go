package logic

import (
	"math"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// DiscountType selects how Discount.Value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage" // Value is a 0-1 fraction
	DiscountFlat       DiscountType = "flat"       // Value is an absolute amount
)

// Discount is an immutable value object. It is referenced or replaced,
// never mutated.
type Discount struct {
	ID       string
	Label    string
	SubLabel string
	Value    float64
	Type     DiscountType
}

// Validate rejects discounts whose value does not fit their type.
func (d Discount) Validate() error {
	switch d.Type {
	case DiscountPercentage:
		if d.Value < 0 || d.Value > 1 || math.IsNaN(d.Value) {
			return common.NewInvalidArgument(ErrMsgPercentageRange)
		}
	case DiscountFlat:
		if d.Value < 0 || math.IsNaN(d.Value) {
			return common.NewInvalidArgument(ErrMsgFlatDiscountNeg)
		}
	default:
		return common.NewInvalidArgumentf(ErrMsgInvalidDiscountType, d.Type)
	}
	return nil
}

// AmountOn returns the discount taken off base. Flat discounts never exceed
// the base they apply to.
func (d Discount) AmountOn(base float64) float64 {
	switch d.Type {
	case DiscountFlat:
		return math.Min(d.Value, math.Max(base, 0))
	default:
		return base * d.Value
	}
}

func (d *Discount) clone() *Discount {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
