package store

import tea "github.com/charmbracelet/bubbletea"

// ProfileState is the profile tab's slice of state. Peripheral to the
// shopping flow; it only holds what the profile screen displays.
type ProfileState struct {
	FullName string
	Email    string
}

// ProfileLoadedMsg delivers profile details into the machine.
type ProfileLoadedMsg struct {
	FullName string
	Email    string
}

// ProfileMachine is a plain data holder with no effects.
type ProfileMachine struct{}

func (ProfileMachine) Update(s ProfileState, msg tea.Msg) (ProfileState, tea.Cmd) {
	if loaded, ok := msg.(ProfileLoadedMsg); ok {
		s.FullName = loaded.FullName
		s.Email = loaded.Email
	}
	return s, nil
}
