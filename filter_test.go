package spend

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFiltered(t *testing.T) {
	s := newTestStore(t,
		X("01-02-2025", 12, "Food", "bread and milk"),
		X("15-02-2025", 30, "Transport", "train ticket"),
		X("01-03-2025", 8, "Food", "milk"),
		X("31-12-2024", 50, "Gym", "yearly fee"),
		X("garbage", 5, "Food", "milk"),
	)

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{
			name: "zero filter",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:   "category",
			filter: Filter{Category: "Food"},
			want:   []int{1, 3, 5},
		},
		{
			name:   "category is case sensitive",
			filter: Filter{Category: "food"},
		},
		{
			name:   "inclusive bounds",
			filter: Filter{From: "01-02-2025", To: "01-03-2025"},
			want:   []int{1, 2, 3},
		},
		{
			name:   "bounds compare across years",
			filter: Filter{To: "01-01-2025"},
			want:   []int{4},
		},
		{
			name:   "unparsable bound is ignored",
			filter: Filter{From: "yesterday", Category: "Food"},
			want:   []int{1, 3, 5},
		},
		{
			name:   "contains",
			filter: Filter{Contains: "milk"},
			want:   []int{1, 3, 5},
		},
		{
			name:   "all criteria",
			filter: Filter{Category: "Food", From: "01-01-2025", To: "28-02-2025", Contains: "milk"},
			want:   []int{1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for _, e := range s.Filtered(tc.filter) {
				got = append(got, e.ID)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Filtered(%+v) mismatch (-want +got):\n%s", tc.filter, diff)
			}
		})
	}
}

func TestFilteredIsZero(t *testing.T) {
	s := newTestStore(t, X("01-02-2025", 12, "Food", ""), X("02-02-2025", 3, "Gym", ""))
	f := Filter{}
	if !f.IsZero() {
		t.Fatalf("Filter{}.IsZero() = false")
	}
	if diff := cmp.Diff(s.Expenses(), s.Filtered(f)); diff != "" {
		t.Errorf("Filtered(zero) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterValidate(t *testing.T) {
	if err := (Filter{From: "01-02-2025", To: "28-02-2025"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	err := Filter{From: "2025-02-01", To: "31-02-2025"}.Validate()
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Validate() = %v, want %v", err, ErrInvalidDate)
	}
}
