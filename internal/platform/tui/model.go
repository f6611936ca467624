package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// statusRows is the number of terminal rows below the board.
const statusRows = 1

// Model is the Bubble Tea model for the terminal game.
type Model struct {
	cfg      config.Config
	loop     *game.Loop
	screen   *core.Screen
	proj     Projection
	palette  Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	tickRate int
	showHelp bool
	cleared  bool // Grid-cleared event already logged for the current grid
	quitting bool
}

// NewModel creates the model for a terminal of rt.ScreenW x rt.ScreenH.
// A zero rt.TickRate uses the configured terminal tick rate. A nil logger
// discards output.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Terminal.TickRate
	}

	m := Model{
		cfg:      cfg,
		loop:     game.NewLoop(cfg),
		screen:   core.NewScreen(0, 0),
		palette:  NewPalette(cfg.Render),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: tickRate,
	}
	m.setSize(rt.ScreenW, rt.ScreenH)
	return m
}

// Loop returns the loop driver the model runs.
func (m Model) Loop() *game.Loop {
	return m.loop
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height, "phase", m.loop.Phase())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg, m.loop.Running()) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.showHelp = !m.showHelp
	case core.ActionStart:
		m.start()
	case core.ActionLaunch:
		m.launch()
	}
	return m, nil
}

// handleMouse moves the paddle with the pointer and launches on a left
// press. Before start, a left press starts the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if !m.loop.Running() {
		if leftPress {
			m.start()
		}
		return m, nil
	}

	// Pointer sits at the cell center.
	m.loop.PointerMove(float64(msg.X)+0.5, m.proj.Bounds())
	if leftPress {
		m.launch()
	}
	return m, nil
}

// handleTick draws the next frame into the screen buffer and advances the
// simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Running() {
		m.screen.Clear()
		m.drawFrame()
		res := m.loop.Tick(NewCellCanvas(m.screen, m.proj, core.ColorObject))
		m.logStep(res)
		if m.showHelp {
			m.drawHelp()
		}
	}
	return m, tickCmd(m.tickRate)
}

func (m *Model) start() {
	vw, vh := m.viewport()
	if !m.loop.Start(vw, vh) {
		return
	}
	m.reproject()

	s := m.loop.State()
	m.logger.Info("session started",
		"phase", m.loop.Phase(),
		"surface", fmt.Sprintf("%gx%g", s.Surface.Width, s.Surface.Height),
		"cells", fmt.Sprintf("%dx%d", m.proj.Cols, m.proj.Rows),
		"bricks", s.AliveBricks(),
	)
}

func (m *Model) launch() {
	if m.loop.Click() {
		b := m.loop.State().Ball
		m.logger.Debug("ball launched", "x", b.X, "y", b.Y, "speed", b.Velocity())
	}
}

// setSize records the terminal size and refits the board.
func (m *Model) setSize(width, height int) {
	m.width = core.Max(width, 0)
	m.height = core.Max(height, 0)
	m.screen.Resize(m.width, m.boardRows())
	m.help.Width = m.width

	if m.loop.Running() {
		vw, vh := m.viewport()
		m.loop.Resize(vw, vh)
		m.cleared = false
		m.reproject()
	}
}

func (m *Model) boardRows() int {
	return core.Max(m.height-statusRows, 0)
}

// viewport returns the board area in surface units.
func (m *Model) viewport() (float64, float64) {
	return float64(m.width) * m.cfg.Terminal.CellWidth,
		float64(m.boardRows()) * m.cfg.Terminal.CellHeight
}

func (m *Model) reproject() {
	m.proj = NewProjection(m.loop.State().Surface, m.width, m.boardRows(),
		m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight)
}

func (m *Model) logStep(res game.StepResult) {
	if res.BallLost {
		m.logger.Info("ball lost", "frame", m.loop.Frames())
	}
	if res.BricksDestroyed == 0 {
		return
	}

	alive := m.loop.State().AliveBricks()
	m.logger.Debug("bricks destroyed", "count", res.BricksDestroyed, "alive", alive)
	if alive == 0 && !m.cleared {
		m.cleared = true
		m.logger.Info("grid cleared", "frame", m.loop.Frames())
	}
}

// drawFrame outlines the board when the terminal has room around it.
func (m *Model) drawFrame() {
	p := m.proj
	if p.Empty() || p.OffsetX < 1 {
		return
	}
	box := core.NewRect(float64(p.OffsetX-1), float64(p.OffsetY-1), float64(p.Cols+2), float64(p.Rows+2))
	if box.Within(core.NewRect(0, 0, float64(m.screen.Width()), float64(m.screen.Height()))) {
		m.screen.DrawBox(p.OffsetX-1, p.OffsetY-1, p.Cols+2, p.Rows+2, core.ColorFrame)
		return
	}
	for y := range p.Rows {
		m.screen.SetCell(p.OffsetX-1, p.OffsetY+y, core.Cell{Rune: '│', Color: core.ColorFrame})
		m.screen.SetCell(p.OffsetX+p.Cols, p.OffsetY+y, core.Cell{Rune: '│', Color: core.ColorFrame})
	}
}

// drawHelp writes the key bindings over the middle of the board.
func (m *Model) drawHelp() {
	var lines []string
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf(" %-12s %-8s ", h.Key, h.Desc))
		}
	}

	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}

	top := (m.screen.Height() - len(lines)) / 2
	left := (m.screen.Width() - width) / 2
	m.screen.FillCells(left, top-1, left+width, top+len(lines)+1, core.Cell{Rune: ' ', Color: core.ColorDefault})
	for i, line := range lines {
		m.screen.DrawTextCentered(top+i, line, core.ColorText)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loop.Running() {
		return m.startView()
	}
	return RenderScreen(m.screen, m.palette) + "\n" + m.statusLine()
}

// startView renders the start overlay.
func (m Model) startView() string {
	title := m.palette.Style(core.ColorText).Render("BRICKBREAK")
	hint := m.palette.Style(core.ColorDim).Render("click or press enter to start")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			title, "", hint, "", m.help.FullHelpView(m.keys.FullHelp()),
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) statusLine() string {
	s := m.loop.State()
	grid := s.Config().Bricks
	total := grid.Rows * grid.Columns
	status := fmt.Sprintf("bricks %d/%d", s.AliveBricks(), total)

	return m.palette.Style(core.ColorText).Render(status) + "  " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program. All-motion mouse reporting is needed
// so the paddle follows the pointer without a button held.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
