package tui

import (
	"context"
	"errors"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/config"
	"strava-wrapped/internal/service"
	"strava-wrapped/internal/wrapped"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenCalendar
	ScreenTrends
	ScreenHighlights
	ScreenWrapped
	ScreenConnect
	ScreenHelp
)

// App is the root Bubble Tea model. It owns the orchestrator, the
// drill-down controller and the wrapped engine; every mutation of that
// shared state happens inside Update, on the single event loop.
type App struct {
	screen     Screen
	prevScreen Screen

	provider *service.Provider
	drill    *service.DrillDown
	engine   *wrapped.Engine
	client   *api.Client

	// Screen models
	dashboard   DashboardModel
	calendar    CalendarModel
	trends      TrendsModel
	highlights  HighlightsModel
	wrappedView WrappedModel
	connect     ConnectModel
	help        HelpModel
	modal       ModalModel

	spin   spinner.Model
	units  Units
	width  int
	height int
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(client *api.Client, provider *service.Provider, display config.DisplayConfig) *App {
	drill := &service.DrillDown{}
	engine := wrapped.NewEngine()
	units := NewUnits(display)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return &App{
		screen:      ScreenDashboard,
		provider:    provider,
		drill:       drill,
		engine:      engine,
		client:      client,
		dashboard:   NewDashboardModel(provider, units),
		calendar:    NewCalendarModel(provider, drill, units),
		trends:      NewTrendsModel(provider, drill, units),
		highlights:  NewHighlightsModel(provider, units),
		wrappedView: NewWrappedModel(engine, units),
		connect:     NewConnectModel(client),
		help:        NewHelpModel(),
		modal:       NewModalModel(units),
		spin:        sp,
		units:       units,
	}
}

// Messages shared across screens.

type batchMsg struct {
	res service.BatchResult
}

type detailMsg struct {
	key        uint64
	activities []api.ActivityHighlight
	err        error
}

type wrappedMsg struct {
	gen  uint64
	data *api.Wrapped
	err  error
}

type sessionMsg struct {
	err error
}

// runBatch executes a batch off the event loop and reports its result.
func runBatch(b *service.Batch) tea.Cmd {
	if b == nil {
		return nil
	}
	return func() tea.Msg {
		return batchMsg{res: b.Run(context.Background())}
	}
}

// runDetail executes one drill-down fetch keyed for supersession.
func runDetail(req *service.DetailRequest, f service.Fetcher) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		activities, err := req.Fetch(context.Background(), f)
		return detailMsg{key: req.Key, activities: activities, err: err}
	}
}

// loadWrapped fetches the wrapped dataset for one engine generation.
func (a *App) loadWrapped(gen uint64) tea.Cmd {
	filter := a.provider.Filter()
	return func() tea.Msg {
		data, err := a.client.GetWrapped(context.Background(), filter)
		return wrappedMsg{gen: gen, data: data, err: err}
	}
}

func (a *App) probeSession() tea.Msg {
	return sessionMsg{err: a.client.ProbeSession(context.Background())}
}

// Init probes the session and issues the initial aggregate batch.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.probeSession, runBatch(a.provider.Refresh()), a.spin.Tick)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.highlights.Resize(msg.Width, msg.Height)
		a.modal.Resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case sessionMsg:
		// The probe only exists to establish the session cookie; a
		// failure here will resurface on the batch anyway.
		return a, nil

	case batchMsg:
		if !a.provider.Apply(msg.res) {
			return a, nil // superseded wave
		}
		a.status = ""
		if msg.res.Err != nil && isAuthError(msg.res.Err) && a.provider.Data() == nil {
			a.prevScreen = a.screen
			a.screen = ScreenConnect
			return a, a.connect.Init()
		}
		return a, nil

	case detailMsg:
		if a.drill.Apply(msg.key, msg.activities, msg.err) {
			if msg.err != nil {
				a.status = "Couldn't load activities: " + msg.err.Error()
			} else {
				a.modal.SetContent(a.drill.Title(), a.drill.Activities())
			}
		}
		return a, nil

	case wrappedMsg:
		a.engine.Apply(msg.gen, msg.data, msg.err)
		return a, nil

	case connectedMsg:
		// User finished the OAuth dance in the browser; retry.
		a.screen = a.prevScreen
		return a, runBatch(a.provider.Refresh())
	}

	return a.delegate(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The open modal captures input first.
	if a.drill.Open() {
		switch msg.String() {
		case "esc", "q":
			a.drill.Close()
			a.modal.Clear()
			return a, nil
		}
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "1":
		a.screen = ScreenDashboard
		return a, nil
	case "2":
		a.screen = ScreenCalendar
		return a, nil
	case "3":
		a.screen = ScreenTrends
		return a, nil
	case "4":
		a.screen = ScreenHighlights
		return a, nil
	case "5", "w":
		if a.screen != ScreenWrapped {
			a.screen = ScreenWrapped
			return a, a.loadWrapped(a.engine.Begin())
		}
	case "f":
		return a, a.cycleFilter()
	case "r":
		if a.screen == ScreenWrapped {
			return a, a.loadWrapped(a.engine.Begin())
		}
		return a, runBatch(a.provider.Refresh())
	case "?":
		if a.screen != ScreenHelp {
			a.prevScreen = a.screen
			a.screen = ScreenHelp
		}
		return a, nil
	case "esc":
		if a.screen == ScreenHelp {
			a.screen = a.prevScreen
			return a, nil
		}
	}

	return a.delegate(msg)
}

// cycleFilter advances the activity filter. The new batch supersedes any
// in-flight wave, and the wrapped engine re-enters Loading when visible.
func (a *App) cycleFilter() tea.Cmd {
	next := a.provider.Filter().Next()
	cmds := []tea.Cmd{runBatch(a.provider.SetFilter(next))}
	if a.screen == ScreenWrapped {
		cmds = append(cmds, a.loadWrapped(a.engine.Begin()))
	}
	return tea.Batch(cmds...)
}

func (a *App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case ScreenCalendar:
		a.calendar, cmd = a.calendar.Update(msg)
	case ScreenTrends:
		a.trends, cmd = a.trends.Update(msg)
	case ScreenHighlights:
		a.highlights, cmd = a.highlights.Update(msg)
	case ScreenWrapped:
		a.wrappedView, cmd = a.wrappedView.Update(msg)
	case ScreenConnect:
		a.connect, cmd = a.connect.Update(msg)
	case ScreenHelp:
		a.help, cmd = a.help.Update(msg)
	}
	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenCalendar:
		content = a.calendar.View()
	case ScreenTrends:
		content = a.trends.View()
	case ScreenHighlights:
		content = a.highlights.View()
	case ScreenWrapped:
		content = a.wrappedView.View()
	case ScreenConnect:
		content = a.connect.View()
	case ScreenHelp:
		content = a.help.View()
	}

	if a.drill.Open() {
		content = a.modal.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	title := "Strava Year in Motion"
	if a.provider.Loading() || a.drill.Pending() {
		title += "  " + a.spin.View()
	}
	return headerStyle.Render(title)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Calendar", ScreenCalendar},
		{"3", "Trends", ScreenTrends},
		{"4", "Highlights", ScreenHighlights},
		{"5", "Wrapped", ScreenWrapped},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navActiveStyle.Render("[f] "+a.provider.Filter().String())
	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return warningStyle.Render(a.status)
	}
	if err := a.provider.Err(); err != "" && a.provider.Data() != nil {
		// Stale-but-usable data stays visible; flag the failed refresh.
		return warningStyle.Render("Refresh failed: " + err)
	}
	return ""
}

func isAuthError(err error) bool {
	var apiErr *api.APIError
	return errors.As(err, &apiErr) && apiErr.IsAuthError()
}
