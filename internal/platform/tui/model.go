package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrichson/time-mission-magma-mayhem/internal/core"
	"github.com/jrichson/time-mission-magma-mayhem/internal/registry"
	"github.com/jrichson/time-mission-magma-mayhem/internal/storage"
)

// submitStage tracks the post-game leaderboard flow.
type submitStage int

const (
	submitNone   submitStage = iota // run still in progress
	submitPrompt                    // entering name and character
	submitDone                      // submitted or skipped
)

// SubmitLimits bounds leaderboard submissions for the active mode.
// Zero values disable the corresponding cap.
type SubmitLimits struct {
	MaxScore int
	MaxLevel int
}

// PlayerIdentity is an optional preset name and character. When the name
// is set, game-over scores are submitted without prompting.
type PlayerIdentity struct {
	Name      string
	Character string
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	identity   PlayerIdentity
	limits     SubmitLimits
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	stage      submitStage
	nameInput  textinput.Model
	charCursor int
	rank       int
	submitErr  error

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, identity PlayerIdentity, limits SubmitLimits) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 2

	charCursor := 0
	for i, c := range storage.Characters {
		if c == identity.Character {
			charCursor = i
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		identity:   identity,
		limits:     limits,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
		charCursor: charCursor,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.stage == submitPrompt {
		return m.handleSubmitKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the run is over or paused
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	// Enter on the game-over screen opens the leaderboard prompt
	if action == MenuActionSelect && m.gameState.GameOver && m.stage == submitNone && m.canSubmit() {
		m.stage = submitPrompt
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	}

	return m, nil
}

// handleSubmitKey processes input for the leaderboard prompt.
func (m Model) handleSubmitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.stage = submitDone
		return m, nil
	case "tab":
		m.charCursor = (m.charCursor + 1) % len(storage.Characters)
		return m, nil
	case "shift+tab":
		m.charCursor--
		if m.charCursor < 0 {
			m.charCursor = len(storage.Characters) - 1
		}
		return m, nil
	case "enter":
		m.submitScore(m.nameInput.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A resize restarts an active run so the game can re-check its fit
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.stage = submitNone
		m.rank = 0
		m.submitErr = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A preset identity submits without prompting
	if m.gameState.GameOver && m.stage == submitNone && m.identity.Name != "" && m.canSubmit() {
		m.submitScore(m.identity.Name)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// canSubmit reports whether the finished run is worth a leaderboard entry.
func (m Model) canSubmit() bool {
	return m.store != nil && m.gameState.Score > 0
}

// submitScore records the run on the leaderboard and stores the rank.
func (m *Model) submitScore(name string) {
	m.stage = submitDone
	if !m.canSubmit() {
		return
	}

	_, rank, err := m.store.Submit(storage.Submission{
		GameID:    m.game.ID(),
		Name:      name,
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		Character: storage.Characters[m.charCursor],
		MaxScore:  m.limits.MaxScore,
		MaxLevel:  m.limits.MaxLevel,
	})
	if err != nil {
		m.submitErr = err
		return
	}
	m.rank = rank
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".magma", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.stage == submitPrompt {
		return m.submitView()
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.gameState.GameOver && m.stage == submitDone {
		out += "\n" + m.resultLine()
	} else if m.gameState.GameOver && m.stage == submitNone && m.canSubmit() {
		out += "\n" + centerText("Enter: save score  |  R: restart  |  Esc: menu", m.config.ScreenW)
	}
	return out
}

// submitView renders the centered leaderboard entry dialog.
func (m Model) submitView() string {
	chars := make([]string, len(storage.Characters))
	for i, c := range storage.Characters {
		if i == m.charCursor {
			chars[i] = "[" + c + "]"
		} else {
			chars[i] = " " + c + " "
		}
	}

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 3).
		Render(strings.Join([]string{
			fmt.Sprintf("Final score: %d  (level %d)", m.gameState.Score, m.gameState.Level),
			"",
			"Name: " + m.nameInput.View(),
			"Character (Tab): " + strings.Join(chars, " "),
			"",
			"Enter: submit  |  Esc: skip",
		}, "\n"))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, dialog)
}

// resultLine summarizes the submission outcome after game over.
func (m Model) resultLine() string {
	switch {
	case m.submitErr != nil:
		return centerText("Score not saved: "+m.submitErr.Error(), m.config.ScreenW)
	case m.rank > 0:
		return centerText(fmt.Sprintf("Leaderboard rank: #%d", m.rank), m.config.ScreenW)
	default:
		return centerText("Score not saved", m.config.ScreenW)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, identity PlayerIdentity, limits SubmitLimits) error {
	model := NewModel(game, store, cfg, identity, limits)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
