package spend

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrExpenseNotFound is returned when no expense has the requested id.
var ErrExpenseNotFound = errors.New("expense not found")

// Store is the in-memory ledger: an ordered list of expenses, the counter
// of the next identifier and the category registry.
//
// Identifiers are assigned by the store, start at 1 and are never reused,
// even after a deletion.
type Store struct {
	expenses   []Expense
	nextID     int
	categories Categories
}

// NewStore creates an empty store with the [DefaultCategories].
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset discards every expense and restores the state of a new store.
func (s *Store) Reset() {
	s.expenses = nil
	s.nextID = 1
	s.categories = Categories{}
	for _, name := range DefaultCategories {
		s.categories.add(name)
	}
}

// Len returns the number of expenses.
func (s *Store) Len() int { return len(s.expenses) }

// NextID returns the identifier the next added expense will get.
func (s *Store) NextID() int { return s.nextID }

// Expenses returns a copy of all expenses in insertion order.
func (s *Store) Expenses() []Expense { return slices.Clone(s.expenses) }

// Add appends e to the store and returns its newly assigned identifier.
//
// e.ID is ignored and text fields longer than their bounds are truncated.
// The category is registered if it is unknown. When the registry is full
// the expense is still added with a category absent from the registry.
func (s *Store) Add(e Expense) int {
	e = e.bounded()
	e.ID = s.nextID
	s.nextID++
	s.expenses = append(s.expenses, e)
	if err := s.categories.add(e.Category); err != nil && !s.categories.Has(e.Category) {
		slog.Debug("expense category not registered", "id", e.ID, "category", e.Category, "error", err)
	}
	return e.ID
}

// Index returns the position of the expense with this id, or -1.
func (s *Store) Index(id int) int {
	return slices.IndexFunc(s.expenses, func(e Expense) bool { return e.ID == id })
}

// Expense returns the expense with this id.
func (s *Store) Expense(id int) (Expense, bool) {
	i := s.Index(id)
	if i < 0 {
		return Expense{}, false
	}
	return s.expenses[i], true
}

// Delete removes the expense with this id, keeping the order of the others.
func (s *Store) Delete(id int) error {
	i := s.Index(id)
	if i < 0 {
		return fmt.Errorf("delete expense %d: %w", id, ErrExpenseNotFound)
	}
	s.expenses = slices.Delete(s.expenses, i, i+1)
	return nil
}

// Categories returns the registered category names in order.
func (s *Store) Categories() []string { return s.categories.Names() }

// HasCategory reports whether name is a registered category.
func (s *Store) HasCategory(name string) bool { return s.categories.Has(name) }

// AddCategory registers a category. Adding an existing name is not an error.
func (s *Store) AddCategory(name string) error {
	if err := s.categories.add(name); err != nil {
		return fmt.Errorf("add category %q: %w", name, err)
	}
	return nil
}

// inUse reports whether any expense refers to the category.
func (s *Store) inUse(name string) bool {
	return slices.ContainsFunc(s.expenses, func(e Expense) bool { return e.Category == name })
}

// RemoveCategory unregisters a category that no expense refers to.
func (s *Store) RemoveCategory(name string) error {
	if !s.categories.Has(name) {
		return fmt.Errorf("remove category %q: %w", name, ErrUnknownCategory)
	}
	if s.inUse(name) {
		return fmt.Errorf("remove category %q: %w", name, ErrCategoryInUse)
	}
	s.categories.remove(name)
	return nil
}

// RenameCategory renames a registered category and every expense using it.
//
// Renaming onto an existing category fails, categories are never merged.
func (s *Store) RenameCategory(old, name string) error {
	if !s.categories.Has(old) {
		return fmt.Errorf("rename category %q: %w", old, ErrUnknownCategory)
	}
	if name == "" {
		return fmt.Errorf("rename category %q: %w", old, ErrEmptyCategory)
	}
	name = truncate(name, CategoryLen)
	if s.categories.Has(name) {
		return fmt.Errorf("rename category %q to %q: %w", old, name, ErrCategoryExists)
	}
	s.categories.rename(old, name)
	for i := range s.expenses {
		if s.expenses[i].Category == old {
			s.expenses[i].Category = name
		}
	}
	return nil
}

// jsonStore is the JSON form of a Store.
type jsonStore struct {
	NextID     int       `json:"nextId"`
	Categories []string  `json:"categories"`
	Expenses   []Expense `json:"expenses"`
}

// MarshalJSON encodes the full state of the store.
func (s *Store) MarshalJSON() ([]byte, error) {
	js := jsonStore{
		NextID:     s.nextID,
		Categories: s.categories.Names(),
		Expenses:   s.expenses,
	}
	if js.Categories == nil {
		js.Categories = []string{}
	}
	if js.Expenses == nil {
		js.Expenses = []Expense{}
	}
	return json.Marshal(js)
}

var _ json.Marshaler = (*Store)(nil)
