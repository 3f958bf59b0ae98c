package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// MaxSubtotal caps the value of a single cart so that pricing arithmetic
// cannot overflow.
const MaxSubtotal = 10_000_000

// LineItem is one cart entry. Prices are whole rupees.
type LineItem struct {
	UnitPrice int
	Quantity  int
}

func (l LineItem) Total() int {
	return l.UnitPrice * l.Quantity
}

// Items maps a menu item name to its line. Names are unique by construction.
type Items struct {
	lines map[string]LineItem
}

func NewItems(lines map[string]LineItem) (Items, error) {
	if len(lines) == 0 {
		return Items{}, errs.NewValueIsRequiredError("items")
	}

	copied := make(map[string]LineItem, len(lines))
	var problems []error
	subtotal := 0
	for name, line := range lines {
		trimmed := strings.TrimSpace(name)
		switch {
		case trimmed == "":
			problems = append(problems, errs.NewValueIsRequiredError("item name"))
			continue
		case line.UnitPrice <= 0:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%s costs %d", trimmed, line.UnitPrice)))
		case line.Quantity <= 0:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%s has quantity %d", trimmed, line.Quantity)))
		case line.UnitPrice > MaxSubtotal/line.Quantity:
			problems = append(problems, errs.NewValueIsOutOfRangeErrorWithCause("item total", trimmed, 1, MaxSubtotal,
				fmt.Errorf("%s: %d × %d", trimmed, line.UnitPrice, line.Quantity)))
		default:
			subtotal += line.Total()
		}
		if _, dup := copied[trimmed]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("item name", fmt.Errorf("%s listed twice", trimmed)))
		}
		copied[trimmed] = line
	}
	if subtotal > MaxSubtotal {
		problems = append(problems, errs.NewValueIsOutOfRangeError("subtotal", subtotal, 1, MaxSubtotal))
	}
	if err := errors.Join(problems...); err != nil {
		return Items{}, err
	}

	return Items{lines: copied}, nil
}

// Subtotal is the sum of price × quantity over all lines.
func (i Items) Subtotal() int {
	total := 0
	for _, line := range i.lines {
		total += line.Total()
	}
	return total
}

// Names returns the item names sorted alphabetically.
func (i Items) Names() []string {
	names := make([]string, 0, len(i.lines))
	for name := range i.lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (i Items) Line(name string) (LineItem, bool) {
	line, ok := i.lines[name]
	return line, ok
}

// Lines returns a copy of the underlying map.
func (i Items) Lines() map[string]LineItem {
	out := make(map[string]LineItem, len(i.lines))
	for k, v := range i.lines {
		out[k] = v
	}
	return out
}

func (i Items) Count() int {
	n := 0
	for _, line := range i.lines {
		n += line.Quantity
	}
	return n
}
