package ui

import (
	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(ch <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.events != nil {
		return waitForBackendEvent(m.events)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.events = nil
	return nil
}

// applyBackendEvent hands job results to the catalog. Results it does not
// recognise only surface their error.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.catalog.Apply(evt) {
		return
	}
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
	}
}
