package store

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// AddToCartState is the nested counter shown on the add-to-cart control.
// It mirrors the row count so both render the same value.
type AddToCartState struct {
	Count int
}

// ProductRowState is one catalog entry's selectable state. Its id is a
// fresh state identity minted at fetch time, distinct from Product.ID.
type ProductRowState struct {
	ID        uuid.UUID
	Product   Product
	Count     int
	AddToCart AddToCartState
}

func (s ProductRowState) Identity() uuid.UUID { return s.ID }

// NewProductRowState returns a row with a fresh identity and a zero count.
func NewProductRowState(p Product) ProductRowState {
	return ProductRowState{ID: uuid.New(), Product: p}
}

// Row messages. They arrive wrapped in RowMsg so the product list can route
// them to the matching row by id.
type (
	RowPlusTappedMsg  struct{}
	RowMinusTappedMsg struct{}
)

// RowMsg scopes a row message to one row id.
type RowMsg struct {
	ID  uuid.UUID
	Msg tea.Msg
}

// ProductRowMachine owns one row's counter. Increments are unbounded,
// decrements stop at zero, and the nested add-to-cart counter always
// mirrors the row count.
type ProductRowMachine struct{}

func (ProductRowMachine) Update(s ProductRowState, msg tea.Msg) (ProductRowState, tea.Cmd) {
	switch msg.(type) {
	case RowPlusTappedMsg:
		s.Count++
	case RowMinusTappedMsg:
		if s.Count > 0 {
			s.Count--
		}
	default:
		return s, nil
	}
	s.AddToCart.Count = s.Count
	return s, nil
}
