package spend

import (
	"errors"
	"slices"
)

// MaxCategories is the capacity of the category registry.
const MaxCategories = 64

// DefaultCategories are registered in every new Store.
var DefaultCategories = []string{"Food", "Transport", "Shopping", "Gym"}

var (
	ErrEmptyCategory   = errors.New("empty category name")
	ErrCategoriesFull  = errors.New("category registry is full")
	ErrUnknownCategory = errors.New("unknown category")
	ErrCategoryInUse   = errors.New("category is used by expenses")
	ErrCategoryExists  = errors.New("category already exists")
)

// Categories is the bounded, ordered set of category names.
//
// Names are compared exactly (case sensitive) and keep their insertion
// order. The zero value is an empty registry ready to use.
type Categories struct {
	names []string
}

// Len returns the number of registered names.
func (c *Categories) Len() int { return len(c.names) }

// Full reports whether no more names can be registered.
func (c *Categories) Full() bool { return len(c.names) >= MaxCategories }

// Has reports whether name is registered.
func (c *Categories) Has(name string) bool { return c.index(name) >= 0 }

// Names returns a copy of the registered names in order.
func (c *Categories) Names() []string { return slices.Clone(c.names) }

func (c *Categories) index(name string) int { return slices.Index(c.names, name) }

// add registers name, truncated to CategoryLen.
//
// Capacity is checked before existence: a full registry refuses even a
// name it already holds.
func (c *Categories) add(name string) error {
	if name == "" {
		return ErrEmptyCategory
	}
	if c.Full() {
		return ErrCategoriesFull
	}
	name = truncate(name, CategoryLen)
	if c.Has(name) {
		return nil
	}
	c.names = append(c.names, name)
	return nil
}

// remove drops name, keeping the order of the others.
func (c *Categories) remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.names = slices.Delete(c.names, i, i+1)
	return true
}

// rename replaces old by name in place.
func (c *Categories) rename(old, name string) bool {
	i := c.index(old)
	if i < 0 {
		return false
	}
	c.names[i] = name
	return true
}
