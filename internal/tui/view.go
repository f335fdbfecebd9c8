package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shoptui/store"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	payStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")).Padding(0, 2)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
)

func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	cart := a.state.ProductList.Cart
	switch {
	case cart != nil && cart.Destination.IsActive():
		b.WriteString(a.renderDestination(cart.Destination))
	case a.state.ProductList.ShouldOpenCart && cart != nil:
		b.WriteString(a.renderCart(cart))
	case a.state.SelectedTab == store.TabProfile:
		b.WriteString(a.renderProfile())
	default:
		b.WriteString(a.renderProducts())
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a App) renderTabs() string {
	products := tabStyle.Render("Products")
	profile := tabStyle.Render("Profile")
	if a.state.SelectedTab == store.TabProducts {
		products = activeTabStyle.Render("Products")
	} else {
		profile = activeTabStyle.Render("Profile")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, products, profile)
}

func (a App) renderProducts() string {
	if a.fetching {
		return a.spin.View() + " Loading products…"
	}
	if a.fetchErr != "" {
		return errStyle.Render(a.fetchErr) + "\n" + dimStyle.Render("press r to retry")
	}

	rows := a.state.ProductList.Rows.Values()
	if len(rows) == 0 {
		return dimStyle.Render("No products.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Products"))
	b.WriteString("\n")
	for i, row := range rows {
		line := fmt.Sprintf("%-40s %10s   x%d", truncate(row.Product.Name, 40), a.price(row.Product), row.AddToCart.Count)
		if i == a.rowCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderCart(cart *store.CartState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart"))
	b.WriteString("\n")

	items := cart.Items.Values()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("Your cart is empty."))
		b.WriteString("\n")
	}
	cursor := a.cartCursor
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	for i, item := range items {
		line := fmt.Sprintf("%-36s %10s  x%d", truncate(item.Item.Product.Name, 36), a.price(item.Item.Product), item.Item.Quantity)
		if i == cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if cart.IsRequestInProcess() {
		b.WriteString(a.spin.View() + " Sending order…")
	} else if !cart.IsPayButtonHidden {
		b.WriteString(payStyle.Render("Pay " + cart.TotalPriceString()))
	}
	return modalStyle.Render(b.String())
}

func (a App) renderDestination(d store.Destination) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")
	if d.Kind == store.DestinationConfirmation {
		b.WriteString(dimStyle.Render("enter confirm · esc cancel"))
	} else {
		b.WriteString(dimStyle.Render("enter done"))
	}
	return modalStyle.Render(b.String())
}

func (a App) renderProfile() string {
	p := a.state.Profile
	if p.FullName == "" {
		return dimStyle.Render("No profile loaded.")
	}
	return fmt.Sprintf("%s\n%s", titleStyle.Render(p.FullName), dimStyle.Render(p.Email))
}

func (a App) renderFooter() string {
	cart := a.state.ProductList.Cart
	var hints []string
	switch {
	case cart != nil && cart.Destination.IsActive():
		hints = []string{"enter confirm", "esc cancel", "q quit"}
	case a.state.ProductList.ShouldOpenCart && cart != nil:
		hints = []string{"d delete", "p pay", "esc close", "q quit"}
	default:
		hints = []string{"+/- quantity", "c cart", "tab switch", "q quit"}
	}
	return footerStyle.Render(strings.Join(hints, " · "))
}

func (a App) price(p store.Product) string {
	return a.cfg.UI.CurrencySymbol + p.Price.StringFixed(2)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
