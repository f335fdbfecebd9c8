// Package tui renders the state tree and translates key presses into store
// messages. It reads only derived fields and dispatches the store's action
// set; all state ownership stays in the machines.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"shoptui/internal/config"
	"shoptui/store"
)

// App ties the root machine to the terminal.
type App struct {
	machine store.RootMachine
	state   store.RootState
	cfg     config.Config
	keys    keyMap
	spin    spinner.Model

	width  int
	height int

	rowCursor  int
	cartCursor int

	// UI-local fetch tracking; the product list state itself stays
	// untouched on failure, so the retry affordance lives here.
	fetching bool
	fetchErr string

	quitting bool
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Plus     key.Binding
	Minus    key.Binding
	OpenCart key.Binding
	Close    key.Binding
	Pay      key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Delete   key.Binding
	Retry    key.Binding
	NextTab  key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Plus:     key.NewBinding(key.WithKeys("+", "right"), key.WithHelp("+", "more")),
		Minus:    key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", "less")),
		OpenCart: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Pay:      key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "pay")),
		Confirm:  key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc", "cancel")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func New(env store.Env, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{
		machine:  store.NewRootMachine(env),
		state:    store.NewRootState(),
		cfg:      cfg,
		keys:     newKeyMap(),
		spin:     sp,
		fetching: true,
	}
}

// State exposes the current tree for tests.
func (a App) State() store.RootState { return a.state }

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, dispatch(toProductList(store.FetchProductsMsg{})))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything else belongs to the machines; note fetch outcomes on the
	// way through so the products screen can show a retry prompt.
	if resp, ok := unwrap(msg).(store.FetchProductsResponseMsg); ok {
		a.fetching = false
		a.fetchErr = ""
		if resp.Err != nil {
			a.fetchErr = "Oops, we couldn't fetch product list"
		}
	}
	return a.apply(msg)
}

// handleKey resolves the active layer highest-first: destination modal,
// then cart sheet, then the selected tab.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		a.quitting = true
		return a, tea.Quit
	}

	cart := a.state.ProductList.Cart
	if cart != nil && cart.Destination.IsActive() {
		return a.handleDestinationKey(msg, cart.Destination.Kind)
	}
	if a.state.ProductList.ShouldOpenCart && cart != nil {
		return a.handleCartKey(msg, cart)
	}

	if key.Matches(msg, a.keys.NextTab) {
		next := store.TabProfile
		if a.state.SelectedTab == store.TabProfile {
			next = store.TabProducts
		}
		return a.apply(store.TabSelectedMsg{Tab: next})
	}

	if a.state.SelectedTab == store.TabProducts {
		return a.handleProductsKey(msg)
	}
	return a, nil
}

func (a App) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.state.ProductList.Rows.Values()
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.rowCursor > 0 {
			a.rowCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.rowCursor < len(rows)-1 {
			a.rowCursor++
		}
	case key.Matches(msg, a.keys.Plus):
		if a.rowCursor < len(rows) {
			return a.apply(toProductList(store.RowMsg{ID: rows[a.rowCursor].ID, Msg: store.RowPlusTappedMsg{}}))
		}
	case key.Matches(msg, a.keys.Minus):
		if a.rowCursor < len(rows) {
			return a.apply(toProductList(store.RowMsg{ID: rows[a.rowCursor].ID, Msg: store.RowMinusTappedMsg{}}))
		}
	case key.Matches(msg, a.keys.OpenCart):
		a.cartCursor = 0
		return a.apply(toProductList(store.SetCartViewMsg{Open: true}))
	case key.Matches(msg, a.keys.Retry):
		if a.fetchErr != "" {
			a.fetching = true
			a.fetchErr = ""
			return a, dispatch(toProductList(store.FetchProductsMsg{}))
		}
	}
	return a, nil
}

func (a App) handleCartKey(msg tea.KeyMsg, cart *store.CartState) (tea.Model, tea.Cmd) {
	items := cart.Items.Values()
	switch {
	case key.Matches(msg, a.keys.Close):
		return a.apply(toCart(store.CloseCartMsg{}))
	case key.Matches(msg, a.keys.Up):
		if a.cartCursor > 0 {
			a.cartCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cartCursor < len(items)-1 {
			a.cartCursor++
		}
	case key.Matches(msg, a.keys.Delete):
		if a.cartCursor < len(items) {
			item := items[a.cartCursor]
			if a.cartCursor == len(items)-1 && a.cartCursor > 0 {
				a.cartCursor--
			}
			return a.apply(toCart(store.CartItemMsg{ID: item.ID, Msg: store.RequestDeleteMsg{Product: item.Item.Product}}))
		}
	case key.Matches(msg, a.keys.Pay):
		if !cart.IsPayButtonHidden && !cart.IsRequestInProcess() {
			return a.apply(toCart(store.PayTappedMsg{}))
		}
	}
	return a, nil
}

func (a App) handleDestinationKey(msg tea.KeyMsg, kind store.DestinationKind) (tea.Model, tea.Cmd) {
	switch kind {
	case store.DestinationConfirmation:
		if key.Matches(msg, a.keys.Confirm) {
			return a.apply(toCart(store.ConfirmPurchaseMsg{}))
		}
		if key.Matches(msg, a.keys.Cancel) {
			return a.apply(toCart(store.CancelConfirmationMsg{}))
		}
	case store.DestinationSuccess:
		if key.Matches(msg, a.keys.Confirm) || key.Matches(msg, a.keys.Close) {
			return a.apply(toCart(store.DismissSuccessMsg{}))
		}
	case store.DestinationError:
		if key.Matches(msg, a.keys.Confirm) || key.Matches(msg, a.keys.Close) {
			return a.apply(toCart(store.DismissErrorMsg{}))
		}
	}
	return a, nil
}

// apply runs a message through the root machine synchronously and returns
// whatever effect it scheduled.
func (a App) apply(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.state, cmd = a.machine.Update(a.state, msg)
	return a, cmd
}

func dispatch(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func toProductList(msg tea.Msg) tea.Msg {
	return store.ProductListMsg{Msg: msg}
}

func toCart(msg tea.Msg) tea.Msg {
	return toProductList(store.CartMsg{Msg: msg})
}

// unwrap strips routing wrappers so the shell can observe effect results
// without owning any routing itself.
func unwrap(msg tea.Msg) tea.Msg {
	for {
		switch w := msg.(type) {
		case store.ProductListMsg:
			msg = w.Msg
		case store.CartMsg:
			msg = w.Msg
		case store.RowMsg:
			msg = w.Msg
		case store.CartItemMsg:
			msg = w.Msg
		case store.ProfileMsg:
			msg = w.Msg
		default:
			return msg
		}
	}
}
