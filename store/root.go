package store

import tea "github.com/charmbracelet/bubbletea"

// Tab selects the top-level screen.
type Tab int

const (
	TabProducts Tab = iota
	TabProfile
)

// RootState is the whole application state tree.
type RootState struct {
	SelectedTab Tab
	ProductList ProductListState
	Profile     ProfileState
}

func NewRootState() RootState {
	return RootState{ProductList: NewProductListState()}
}

// Root messages.
type TabSelectedMsg struct{ Tab Tab }

// ProductListMsg scopes a message to the product list machine.
type ProductListMsg struct{ Msg tea.Msg }

// ProfileMsg scopes a message to the profile machine.
type ProfileMsg struct{ Msg tea.Msg }

// RootMachine is pure composition: it owns the tab selection and forwards
// everything else to the matching child machine.
type RootMachine struct {
	productList ProductListMachine
	profile     ProfileMachine
}

func NewRootMachine(env Env) RootMachine {
	return RootMachine{productList: NewProductListMachine(env)}
}

func (m RootMachine) Update(s RootState, msg tea.Msg) (RootState, tea.Cmd) {
	switch msg := msg.(type) {
	case TabSelectedMsg:
		s.SelectedTab = msg.Tab
		return s, nil

	case ProductListMsg:
		next, cmd := m.productList.Update(s.ProductList, msg.Msg)
		s.ProductList = next
		return s, wrapCmd(cmd, func(inner tea.Msg) tea.Msg { return ProductListMsg{Msg: inner} })

	case ProfileMsg:
		next, cmd := m.profile.Update(s.Profile, msg.Msg)
		s.Profile = next
		return s, wrapCmd(cmd, func(inner tea.Msg) tea.Msg { return ProfileMsg{Msg: inner} })
	}
	return s, nil
}
