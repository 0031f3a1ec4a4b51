package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ToastType identifies the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastError
)

// Toast represents a notification message
type Toast struct {
	Message string
	Type    ToastType
}

// ToastDismissed is sent when a toast should be dismissed
type ToastDismissed struct{}

// ToastModel manages toast notifications
type ToastModel struct {
	current   *Toast
	showUntil time.Time
	styles    Styles
}

// NewToastModel creates a new toast model
func NewToastModel() *ToastModel {
	return &ToastModel{styles: DefaultStyles()}
}

// SetStyles updates the toast styles (for theme changes).
func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Show displays a toast notification
func (m *ToastModel) Show(message string, toastType ToastType, duration time.Duration) tea.Cmd {
	m.current = &Toast{Message: message, Type: toastType}
	m.showUntil = time.Now().Add(duration)

	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{}
	})
}

// ShowSuccess shows a success toast
func (m *ToastModel) ShowSuccess(message string) tea.Cmd {
	return m.Show(message, ToastSuccess, 3*time.Second)
}

// ShowError shows an error toast
func (m *ToastModel) ShowError(message string) tea.Cmd {
	return m.Show(message, ToastError, 5*time.Second)
}

// ShowInfo shows an info toast
func (m *ToastModel) ShowInfo(message string) tea.Cmd {
	return m.Show(message, ToastInfo, 3*time.Second)
}

// Dismiss hides the toast if its display window has passed.
func (m *ToastModel) Dismiss() {
	if time.Now().After(m.showUntil) {
		m.current = nil
	}
}

// Visible reports whether a toast is currently shown.
func (m *ToastModel) Visible() bool {
	return m.current != nil
}

// View renders the current toast, or "" when nothing is shown.
func (m *ToastModel) View() string {
	if m.current == nil {
		return ""
	}
	switch m.current.Type {
	case ToastSuccess:
		return m.styles.ToastSuccess.Render(m.current.Message)
	case ToastError:
		return m.styles.ToastError.Render(m.current.Message)
	default:
		return m.styles.ToastInfo.Render(m.current.Message)
	}
}
