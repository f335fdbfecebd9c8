package store

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProductRowCounter(t *testing.T) {
	tests := []struct {
		name  string
		start int
		msgs  []tea.Msg
		want  int
	}{
		{name: "plus_increments", start: 0, msgs: []tea.Msg{RowPlusTappedMsg{}, RowPlusTappedMsg{}}, want: 2},
		{name: "minus_decrements", start: 2, msgs: []tea.Msg{RowMinusTappedMsg{}}, want: 1},
		{name: "minus_stops_at_zero", start: 0, msgs: []tea.Msg{RowMinusTappedMsg{}}, want: 0},
	}

	var machine ProductRowMachine
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProductRowState(testProduct(1, "Mug", 10))
			s.Count = tt.start
			s.AddToCart.Count = tt.start
			for _, msg := range tt.msgs {
				var cmd tea.Cmd
				s, cmd = machine.Update(s, msg)
				if cmd != nil {
					t.Fatalf("row updates must not schedule effects")
				}
			}
			if s.Count != tt.want {
				t.Fatalf("Count=%d, want %d", s.Count, tt.want)
			}
			if s.AddToCart.Count != s.Count {
				t.Fatalf("nested counter %d not mirroring count %d", s.AddToCart.Count, s.Count)
			}
		})
	}
}

func TestRowIdentityDistinctFromProduct(t *testing.T) {
	p := testProduct(7, "Cap", 5)
	a := NewProductRowState(p)
	b := NewProductRowState(p)
	if a.ID == b.ID {
		t.Fatalf("two rows over the same product must get distinct identities")
	}
}
