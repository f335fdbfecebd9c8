package store

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DataLoadingStatus tracks an effect's lifecycle within a machine's state.
type DataLoadingStatus int

const (
	StatusNotStarted DataLoadingStatus = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// CartState owns the order lines plus the values derived from them.
// TotalPrice and IsPayButtonHidden are never set directly; recompute keeps
// them consistent after every item mutation.
type CartState struct {
	Items             IdentifiedList[CartItemState]
	TotalPrice        decimal.Decimal
	IsPayButtonHidden bool
	Status            DataLoadingStatus
	Destination       Destination
}

// NewCartState builds a cart over the given items with its derived fields
// already consistent.
func NewCartState(items ...CartItemState) CartState {
	s := CartState{Items: NewIdentifiedList(items...)}
	return s.recompute()
}

// TotalPriceString is the display total, rounded to two decimal places.
func (s CartState) TotalPriceString() string {
	return money(s.TotalPrice)
}

// IsRequestInProcess reports whether an order submission is in flight.
func (s CartState) IsRequestInProcess() bool {
	return s.Status == StatusLoading
}

func (s CartState) recompute() CartState {
	total := decimal.Zero
	for _, item := range s.Items.Values() {
		total = total.Add(item.Item.Subtotal())
	}
	s.TotalPrice = total
	s.IsPayButtonHidden = total.IsZero()
	return s
}

// Cart messages. They arrive wrapped in CartMsg so the product list routes
// them to its cart instance; effect results come back through the same
// wrapper path.
type (
	CloseCartMsg          struct{}
	RecomputeTotalMsg     struct{}
	PayTappedMsg          struct{}
	ConfirmPurchaseMsg    struct{}
	CancelConfirmationMsg struct{}
	DismissSuccessMsg     struct{}
	DismissErrorMsg       struct{}
	DeleteCartItemMsg     struct{ ID uuid.UUID }
)

// PurchaseResponseMsg reports the outcome of the submit-order effect.
type PurchaseResponseMsg struct {
	Message string
	Err     error
}

// CartMachine interprets cart messages and schedules the submit-order
// effect. At most one submission is in flight per cart instance; a confirm
// while loading is ignored rather than scheduled twice.
type CartMachine struct {
	env  Env
	item CartItemMachine
}

func NewCartMachine(env Env) CartMachine {
	return CartMachine{env: env.WithDefaults()}
}

func (m CartMachine) Update(s CartState, msg tea.Msg) (CartState, tea.Cmd) {
	switch msg := msg.(type) {
	case CloseCartMsg:
		// Surfaced to the parent, which tears the cart down.
		return s, nil

	case RecomputeTotalMsg:
		return s.recompute(), nil

	case PayTappedMsg:
		// Deliberately unguarded at zero total: the pay button is hidden
		// then, but the action itself still opens a $0.00 confirmation.
		s.Destination = ConfirmationDestination(s.TotalPriceString())
		return s, nil

	case ConfirmPurchaseMsg:
		if s.IsRequestInProcess() {
			m.env.Logger.Warn("order submission already in flight, ignoring confirm")
			return s, nil
		}
		s.Status = StatusLoading
		s.Destination = Destination{}
		return s, m.sendOrderCmd(s.orderSnapshot())

	case CancelConfirmationMsg, DismissSuccessMsg, DismissErrorMsg:
		s.Destination = Destination{}
		return s, nil

	case PurchaseResponseMsg:
		if msg.Err != nil {
			s.Status = StatusError
			s.Destination = ErrorDestination()
			m.env.Logger.Error("unable to send order", "err", msg.Err)
			return s, nil
		}
		s.Status = StatusSuccess
		s.Destination = SuccessDestination(msg.Message)
		m.env.Logger.Info("order accepted", "message", msg.Message)
		return s, nil

	case DeleteCartItemMsg:
		s.Items = s.Items.Remove(msg.ID)
		return s.recompute(), nil

	case CartItemMsg:
		item, ok := s.Items.Get(msg.ID)
		if !ok {
			return s, nil
		}
		next, cmd := m.item.Update(item, msg.Msg)
		s.Items = s.Items.Upsert(next)
		if _, isDelete := msg.Msg.(RequestDeleteMsg); isDelete {
			id := msg.ID
			return s, tea.Batch(cmd, func() tea.Msg { return DeleteCartItemMsg{ID: id} })
		}
		return s, cmd
	}
	return s, nil
}

// orderSnapshot copies the current lines at confirm time; mutations while
// the submission is in flight must not affect the payload.
func (s CartState) orderSnapshot() []CartItem {
	states := s.Items.Values()
	items := make([]CartItem, 0, len(states))
	for _, st := range states {
		items = append(items, st.Item)
	}
	return items
}

func (m CartMachine) sendOrderCmd(items []CartItem) tea.Cmd {
	return func() tea.Msg {
		message, err := m.env.SendOrder(context.Background(), items)
		return PurchaseResponseMsg{Message: message, Err: err}
	}
}
