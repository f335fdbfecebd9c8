package store

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ProductListState owns the catalog rows and, while the cart view is open,
// the cart instance. The cart is a point-in-time projection of the rows,
// never the source of truth: it is rebuilt on every open and discarded on
// close, and deletions inside it flow back through ResetProductMsg.
type ProductListState struct {
	Rows           IdentifiedList[ProductRowState]
	ShouldOpenCart bool
	Cart           *CartState
}

func NewProductListState() ProductListState {
	return ProductListState{Rows: NewIdentifiedList[ProductRowState]()}
}

// Product list messages.
type (
	FetchProductsMsg struct{}
	SetCartViewMsg   struct{ Open bool }
	ResetProductMsg  struct{ Product Product }
)

// FetchProductsResponseMsg reports the outcome of the catalog-fetch effect.
type FetchProductsResponseMsg struct {
	Products []Product
	Err      error
}

// CartMsg scopes a message to the embedded cart instance.
type CartMsg struct {
	Msg tea.Msg
}

// ProductListMachine drives the catalog-fetch effect, the cart projection,
// and the reconciliation of cart deletions back into row counters.
type ProductListMachine struct {
	env  Env
	cart CartMachine
	row  ProductRowMachine
}

func NewProductListMachine(env Env) ProductListMachine {
	env = env.WithDefaults()
	return ProductListMachine{env: env, cart: NewCartMachine(env)}
}

func (m ProductListMachine) Update(s ProductListState, msg tea.Msg) (ProductListState, tea.Cmd) {
	switch msg := msg.(type) {
	case FetchProductsMsg:
		return s, m.fetchProductsCmd()

	case FetchProductsResponseMsg:
		if msg.Err != nil {
			// State stays untouched; the UI offers a retry by
			// re-dispatching FetchProductsMsg.
			m.env.Logger.Error("error getting products", "err", msg.Err)
			return s, nil
		}
		rows := make([]ProductRowState, 0, len(msg.Products))
		for _, p := range msg.Products {
			rows = append(rows, NewProductRowState(p))
		}
		// Always a full replacement: fresh ids, counts back to zero.
		s.Rows = NewIdentifiedList(rows...)
		return s, nil

	case SetCartViewMsg:
		s.ShouldOpenCart = msg.Open
		if !msg.Open {
			s.Cart = nil
			return s, nil
		}
		cart := NewCartState(s.cartSnapshot()...)
		s.Cart = &cart
		return s, nil

	case ResetProductMsg:
		return s.resetProduct(msg.Product), nil

	case CartMsg:
		return m.updateCart(s, msg.Msg)

	case RowMsg:
		row, ok := s.Rows.Get(msg.ID)
		if !ok {
			return s, nil
		}
		next, cmd := m.row.Update(row, msg.Msg)
		s.Rows = s.Rows.Upsert(next)
		return s, wrapCmd(cmd, func(inner tea.Msg) tea.Msg { return RowMsg{ID: msg.ID, Msg: inner} })
	}
	return s, nil
}

func (m ProductListMachine) updateCart(s ProductListState, inner tea.Msg) (ProductListState, tea.Cmd) {
	if _, ok := inner.(CloseCartMsg); ok {
		s.ShouldOpenCart = false
		s.Cart = nil
		return s, nil
	}
	if s.Cart == nil {
		// A stale result for a torn-down cart instance; nothing to route to.
		return s, nil
	}

	next, cmd := m.cart.Update(*s.Cart, inner)
	s.Cart = &next
	cmd = wrapCmd(cmd, func(msg tea.Msg) tea.Msg { return CartMsg{Msg: msg} })

	// A delete intent bubbling through the cart also reconciles the
	// matching catalog row.
	if itemMsg, ok := inner.(CartItemMsg); ok {
		if del, ok := itemMsg.Msg.(RequestDeleteMsg); ok {
			product := del.Product
			cmd = tea.Batch(cmd, func() tea.Msg { return ResetProductMsg{Product: product} })
		}
	}
	return s, cmd
}

// cartSnapshot projects every row with a positive count into a fresh cart
// line. Fresh ids throughout: the projection shares no identity with the
// rows it came from.
func (s ProductListState) cartSnapshot() []CartItemState {
	items := make([]CartItemState, 0, s.Rows.Len())
	for _, row := range s.Rows.Values() {
		if row.Count <= 0 {
			continue
		}
		items = append(items, CartItemState{
			ID: uuid.New(),
			Item: CartItem{
				ID:       uuid.New(),
				Product:  row.Product,
				Quantity: row.Count,
			},
		})
	}
	return items
}

// resetProduct zeroes the counter of the row whose product matches by
// catalog id. A product with no matching row (for example after a refetch
// while the cart was open) is a silent no-op.
func (s ProductListState) resetProduct(p Product) ProductListState {
	for _, row := range s.Rows.Values() {
		if row.Product.ID != p.ID {
			continue
		}
		row.Count = 0
		row.AddToCart.Count = 0
		s.Rows = s.Rows.Upsert(row)
		return s
	}
	return s
}

func (m ProductListMachine) fetchProductsCmd() tea.Cmd {
	return func() tea.Msg {
		products, err := m.env.FetchProducts(context.Background())
		return FetchProductsResponseMsg{Products: products, Err: err}
	}
}
