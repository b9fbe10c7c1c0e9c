package spend

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// This file contains the binary snapshot of a Store.
//
// The snapshot is a verbatim dump of the store state, meant for a fast
// reload on the same machine. Integers and floats are written in the host
// byte order, the file is not portable across architectures.
//
//	int32            number of expenses
//	int32            next identifier
//	int32            number of categories
//	[32]byte         category name, NUL padded, repeated
//	expense record   repeated, see rawExpense

// Sizes of the NUL padded text buffers of the snapshot.
const (
	dateSize        = DateLen + 1
	categorySize    = CategoryLen + 1
	descriptionSize = DescriptionLen + 1
)

// ErrSnapshotCorrupt is returned when a snapshot holds impossible counts or
// identifiers.
var ErrSnapshotCorrupt = errors.New("corrupt snapshot")

// byteOrder is the host byte order.
var byteOrder = binary.NativeEndian

// snapshotHeader starts every snapshot.
type snapshotHeader struct {
	Count      int32
	NextID     int32
	Categories int32
}

// rawExpense is the fixed layout of an expense record. A padding byte
// aligns the amount on 8 bytes, records are 184 bytes long.
type rawExpense struct {
	ID          int32
	Date        [dateSize]byte
	_           [1]byte
	Amount      float64
	Category    [categorySize]byte
	Description [descriptionSize]byte
}

func newRawExpense(e Expense) rawExpense {
	var r rawExpense
	r.ID = int32(e.ID)
	copy(r.Date[:dateSize-1], e.Date)
	r.Amount = e.Amount
	copy(r.Category[:categorySize-1], e.Category)
	copy(r.Description[:descriptionSize-1], e.Description)
	return r
}

func (r rawExpense) expense() Expense {
	return Expense{
		ID:          int(r.ID),
		Date:        cstring(r.Date[:]),
		Amount:      r.Amount,
		Category:    cstring(r.Category[:]),
		Description: cstring(r.Description[:]),
	}.bounded()
}

// cstring reads a NUL terminated string from a fixed size buffer.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// EncodeSnapshot writes the full state of s to w.
func EncodeSnapshot(w io.Writer, s *Store) error {
	header := snapshotHeader{
		Count:      int32(len(s.expenses)),
		NextID:     int32(s.nextID),
		Categories: int32(s.categories.Len()),
	}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return fmt.Errorf("cannot write snapshot header: %w", err)
	}
	for _, name := range s.categories.names {
		var buf [categorySize]byte
		copy(buf[:categorySize-1], name)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("cannot write snapshot category %q: %w", name, err)
		}
	}
	for _, e := range s.expenses {
		if err := binary.Write(w, byteOrder, newRawExpense(e)); err != nil {
			return fmt.Errorf("cannot write snapshot expense %d: %w", e.ID, err)
		}
	}
	return nil
}

// DecodeSnapshot replaces the state of s with the snapshot read from r.
//
// A failure while reading the header or the categories leaves s
// untouched. Once the categories are read, the previous content of s is
// discarded: if the expenses cannot be read, or if an expense id is not
// below the next id, s is left as a new store.
func DecodeSnapshot(r io.Reader, s *Store) error {
	var header snapshotHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return fmt.Errorf("cannot read snapshot header: %w", err)
	}
	if header.Count < 0 || header.NextID < 1 || header.Categories < 0 || header.Categories > MaxCategories {
		return fmt.Errorf("%w: %d expenses, next id %d and %d categories", ErrSnapshotCorrupt, header.Count, header.NextID, header.Categories)
	}

	// names go through the registry rules: a slot without its NUL is
	// truncated, then duplicates and empty names are dropped.
	var cats Categories
	for i := 0; i < int(header.Categories); i++ {
		var buf [categorySize]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return fmt.Errorf("cannot read snapshot category %d: %w", i, err)
		}
		if err := cats.add(cstring(buf[:])); err != nil {
			slog.Warn("dropping snapshot category", "slot", i, "error", err)
		}
	}

	s.Reset()
	// the count is not trusted for the allocation, the reads will tell.
	expenses := make([]Expense, 0, min(int(header.Count), 1024))
	for i := 0; i < int(header.Count); i++ {
		var raw rawExpense
		if err := binary.Read(r, byteOrder, &raw); err != nil {
			return fmt.Errorf("cannot read snapshot expense %d of %d: %w", i+1, header.Count, err)
		}
		e := raw.expense()
		if e.ID >= int(header.NextID) {
			return fmt.Errorf("%w: expense id %d not below next id %d", ErrSnapshotCorrupt, e.ID, header.NextID)
		}
		expenses = append(expenses, e)
	}

	s.expenses = expenses
	s.nextID = int(header.NextID)
	s.categories = cats
	return nil
}

// SaveSnapshot writes the snapshot of s into filename, creating its
// directory if needed. The store is never modified.
func SaveSnapshot(filename string, s *Store) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("cannot create snapshot directory: %w", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create snapshot %q: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close snapshot %q: %w", filename, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeSnapshot(w, s); err != nil {
		return fmt.Errorf("cannot save snapshot %q: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("cannot save snapshot %q: %w", filename, err)
	}
	return nil
}

// LoadSnapshot replaces the state of s with the snapshot stored in filename.
//
// A missing file is reported with an error matching [fs.ErrNotExist] and
// leaves s untouched. See [DecodeSnapshot] for partial failures.
func LoadSnapshot(filename string, s *Store) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open snapshot: %w", err)
	}
	defer f.Close()

	if err := DecodeSnapshot(bufio.NewReader(f), s); err != nil {
		return fmt.Errorf("cannot load snapshot %q: %w", filename, err)
	}
	return nil
}
