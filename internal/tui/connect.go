package tui

import (
	"context"

	"strava-wrapped/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConnectModel is shown when the backend has no authenticated Strava
// session. Authentication itself is the backend's job; we only fetch its
// redirect URL and point the user at it.
type ConnectModel struct {
	client  *api.Client
	authURL string
	err     error
	loading bool
}

// NewConnectModel creates a new connect model
func NewConnectModel(client *api.Client) ConnectModel {
	return ConnectModel{client: client}
}

type authURLMsg struct {
	url string
	err error
}

// connectedMsg asks the app to retry the aggregate batch after the user
// finished the browser flow.
type connectedMsg struct{}

// Init fetches the OAuth redirect URL from the backend
func (m ConnectModel) Init() tea.Cmd {
	return m.loadAuthURL
}

func (m ConnectModel) loadAuthURL() tea.Msg {
	url, err := m.client.GetAuthURL(context.Background())
	return authURLMsg{url: url, err: err}
}

// Update handles messages
func (m ConnectModel) Update(msg tea.Msg) (ConnectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authURLMsg:
		m.loading = false
		m.authURL = msg.url
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, func() tea.Msg { return connectedMsg{} }
		case "u":
			m.loading = true
			return m, m.loadAuthURL
		}
	}
	return m, nil
}

// View renders the connect screen
func (m ConnectModel) View() string {
	title := cardTitleStyle.Render("Connect with Strava")

	lines := []string{
		"Your year of training is waiting: trends, highlights, and fun facts.",
		"",
	}

	switch {
	case m.loading:
		lines = append(lines, "Fetching the connect link...")
	case m.err != nil:
		lines = append(lines, errorStyle.Render("Couldn't get the connect link: "+m.err.Error()))
		lines = append(lines, mutedStyle.Render("Press 'u' to try again."))
	case m.authURL != "":
		lines = append(lines, "Open this URL in your browser and authorize the app:")
		lines = append(lines, metricValueStyle.Render("  "+m.authURL))
		lines = append(lines, "")
		lines = append(lines, mutedStyle.Render("Press enter once you've connected."))
	default:
		lines = append(lines, "Fetching the connect link...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(72).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
