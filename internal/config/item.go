package config

import (
	"strings"
)

// Item maps a scalar value to a named setting. The name is fixed at
// construction; the value is mutated in place through Set and SetString
// for the life of the process.
type Item struct {
	name  string
	value Value
}

// NewItem constructs an item with the given display name and value.
func NewItem(name string, value Value) Item {
	return Item{name: name, value: value}
}

// NewBool constructs a boolean item.
func NewBool(name string, v bool) Item { return NewItem(name, Bool(v)) }

// NewUint8 constructs an unsigned 8-bit integer item.
func NewUint8(name string, v uint8) Item { return NewItem(name, Uint8(v)) }

// NewInt32 constructs a signed 32-bit integer item.
func NewInt32(name string, v int32) Item { return NewItem(name, Int32(v)) }

// NewFloat64 constructs a double-precision float item.
func NewFloat64(name string, v float64) Item { return NewItem(name, Float64(v)) }

// Name returns the display name, unchanged.
func (it *Item) Name() string {
	return it.name
}

// Tagname returns the canonical persistence key: the display name with
// every space replaced by a hyphen. It is derived on each call, never
// stored.
func (it *Item) Tagname() string {
	return strings.ReplaceAll(it.name, " ", "-")
}

// Kind returns the active kind of the item's value.
func (it *Item) Kind() Kind {
	return it.value.Kind()
}

// Value returns a copy of the item's value.
func (it *Item) Value() Value {
	return it.value
}

// String renders the item's value in its natural decimal text form.
func (it *Item) String() string {
	return it.value.String()
}

// AsBool returns the boolean payload, or an error on kind mismatch.
func (it *Item) AsBool() (bool, error) {
	v, err := it.value.AsBool()
	return v, it.wrapKindError(err)
}

// AsUint8 returns the uint8 payload, or an error on kind mismatch.
func (it *Item) AsUint8() (uint8, error) {
	v, err := it.value.AsUint8()
	return v, it.wrapKindError(err)
}

// AsInt32 returns the int32 payload, or an error on kind mismatch.
func (it *Item) AsInt32() (int32, error) {
	v, err := it.value.AsInt32()
	return v, it.wrapKindError(err)
}

// AsFloat64 returns the float64 payload, or an error on kind mismatch.
func (it *Item) AsFloat64() (float64, error) {
	v, err := it.value.AsFloat64()
	return v, it.wrapKindError(err)
}

// SetString assigns a new value parsed from text and reports whether the
// text was accepted. On parse failure for numeric kinds the item is left
// unchanged.
func (it *Item) SetString(text string) bool {
	return it.value.SetString(text)
}

// Set overwrites the value, converting to the item's kind.
func (it *Item) Set(value any) error {
	return it.value.Set(value)
}

// ConvertBool converts the value to a boolean.
func (it *Item) ConvertBool() bool { return it.value.ConvertBool() }

// ConvertInt converts the value to an int.
func (it *Item) ConvertInt() int { return it.value.ConvertInt() }

// ConvertFloat64 converts the value to a float64.
func (it *Item) ConvertFloat64() float64 { return it.value.ConvertFloat64() }

// Equal reports structural equality: name and active payload both match.
func (it *Item) Equal(other *Item) bool {
	return it.name == other.name && it.value == other.value
}

// wrapKindError attaches the item name to a kind-mismatch error.
func (it *Item) wrapKindError(err error) error {
	if err == nil {
		return nil
	}
	if ke, ok := err.(*KindError); ok {
		return &KindError{Name: it.name, Requested: ke.Requested, Actual: ke.Actual}
	}
	return err
}
