// ABOUTME: Root bubbletea model for the interactive authentication screen
// ABOUTME: Reads employee IDs, fires simulations, and shows the latest verdict

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/facerec-auth/internal/authsim"
	"github.com/markalston/facerec-auth/internal/client"
	"github.com/markalston/facerec-auth/internal/tui/icons"
	"github.com/markalston/facerec-auth/internal/tui/resultview"
	"github.com/markalston/facerec-auth/internal/tui/styles"
)

// Layout constants
const (
	maxPanelWidth = 60
	panelPadding  = 4 // Total horizontal padding from panel borders (2 each side)
)

// authResolvedMsg is sent when a simulation finishes, successful or not
type authResolvedMsg struct {
	pending *authsim.Pending
}

// latestResult is the TUI's render target: the verdict that resolved last
type latestResult struct {
	mu     sync.Mutex
	result *client.AuthResult
}

// Display implements authsim.Display
func (l *latestResult) Display(result client.AuthResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.result = &result
}

func (l *latestResult) get() *client.AuthResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// App is the root model for the TUI
type App struct {
	ctx      context.Context
	endpoint string
	sim      *authsim.Simulator
	latest   *latestResult
	input    textinput.Model
	spinner  spinner.Model
	inFlight int
	sent     int
	width    int
	height   int
}

// New creates a new TUI application. endpoint is only displayed.
func New(ctx context.Context, auth authsim.Authenticator, endpoint string, logger *slog.Logger) *App {
	latest := &latestResult{}

	ti := textinput.New()
	ti.Prompt = "Employee ID: "
	ti.Placeholder = "e.g. 1"
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &App{
		ctx:      ctx,
		endpoint: endpoint,
		sim:      authsim.New(auth, latest, authsim.WithLogger(logger)),
		latest:   latest,
		input:    ti,
		spinner:  sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.submit()
		}

	case authResolvedMsg:
		// The verdict, if any, is already in a.latest; failures were logged.
		a.inFlight--
		return a, nil

	case spinner.TickMsg:
		if a.inFlight == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit fires a simulation for the typed ID without waiting for it
func (a *App) submit() tea.Cmd {
	employeeID := a.input.Value()
	a.input.Reset()

	p := a.sim.SimulateAuthentication(a.ctx, employeeID)
	a.sent++
	a.inFlight++

	wait := func() tea.Msg {
		<-p.Done()
		return authResolvedMsg{pending: p}
	}
	if a.inFlight == 1 {
		return tea.Batch(wait, a.spinner.Tick)
	}
	return wait
}

// View implements tea.Model
func (a *App) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Face.String() + " Facial Recognition Authentication"))
	sb.WriteString("\n")
	if a.endpoint != "" {
		sb.WriteString(styles.Subtitle.Render("Service: " + a.endpoint))
	}
	sb.WriteString("\n")
	sb.WriteString(a.input.View())
	sb.WriteString("\n")

	if a.inFlight > 0 {
		sb.WriteString(fmt.Sprintf("%s %d request(s) in flight", a.spinner.View(), a.inFlight))
	}
	sb.WriteString("\n\n")

	width := a.panelWidth()
	if result := a.latest.get(); result != nil {
		sb.WriteString(resultview.Render(*result, width))
	} else {
		sb.WriteString(resultview.Empty(width))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render(
		styles.KeyStyle.Render("enter") + " authenticate  " +
			styles.KeyStyle.Render("esc") + " " + icons.Quit.String() + " quit"))

	return sb.String()
}

func (a *App) panelWidth() int {
	if a.width <= 0 {
		return 0
	}
	w := a.width - panelPadding
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	return w
}

// Run starts the TUI against c
func Run(ctx context.Context, c *client.Client, logger *slog.Logger) error {
	app := New(ctx, c, c.BaseURL(), logger)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
