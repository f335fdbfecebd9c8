package store

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// CartItemState wraps one CartItem under a stable state identity. The
// identity is minted when the cart snapshot is built, so distinct cart
// sessions get distinct ids even for the same product.
type CartItemState struct {
	ID   uuid.UUID
	Item CartItem
}

func (s CartItemState) Identity() uuid.UUID { return s.ID }

// RequestDeleteMsg is the row's delete intent. It carries the product so
// the product list can reconcile the matching catalog row after the cart
// machine drops the line.
type RequestDeleteMsg struct {
	Product Product
}

// CartItemMsg scopes a cart-item message to one item id.
type CartItemMsg struct {
	ID  uuid.UUID
	Msg tea.Msg
}

// CartItemMachine is a pass-through: the delete intent mutates nothing
// locally, it only signals upward.
type CartItemMachine struct{}

func (CartItemMachine) Update(s CartItemState, msg tea.Msg) (CartItemState, tea.Cmd) {
	return s, nil
}
