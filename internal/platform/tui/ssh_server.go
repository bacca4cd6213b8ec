package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/config"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/session"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.searchviz/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.searchviz/runs.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the visualizer.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *session.Registry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "searchviz-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: session.NewRegistry(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".searchviz", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create session model that handles the picker -> run flow
	model := NewSessionModel(s.store, pty.Window.Width, pty.Window.Height, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware tracks active sessions and logs their lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := session.ID(fmt.Sprintf("%s-%d", sshSession.User(), time.Now().UnixNano()))
		s.sessions.Register(session.Info{
			ID:      id,
			User:    sshSession.User(),
			Addr:    sshSession.RemoteAddr().String(),
			Started: time.Now(),
		})
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
		next(sshSession)
		s.sessions.Unregister(id)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Sessions returns the active session registry.
func (s *SSHServer) Sessions() *session.Registry {
	return s.sessions
}

// sessionStage identifies which screen a session is on.
type sessionStage int

const (
	stageProblems sessionStage = iota
	stageAlgorithms
	stageRun
	stageHistory
)

// SessionModel manages the full viewer flow for one connection:
// problem picker -> algorithm picker -> run view, plus the history browser.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	width    int
	height   int
	username string
	label    string

	stage    sessionStage
	menu     MenuModel
	algoMenu *AlgorithmMenuModel
	runModel *RunModel
	history  *HistoryModel
	problem  registry.Problem
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, width, height int, username string) SessionModel {
	label := string(session.Local)
	if username != "" {
		label = "ssh:" + username
	}

	return SessionModel{
		store:    store,
		width:    width,
		height:   height,
		username: username,
		label:    label,
		stage:    stageProblems,
		menu:     NewMenuModel(width, height),
	}
}

// saver returns the run saver, or nil when the store is unavailable.
func (m SessionModel) saver() session.RunSaver {
	if m.store == nil {
		return nil
	}
	return m.store
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.stage {
	case stageAlgorithms:
		return m.updateAlgoMenu(msg)
	case stageRun:
		return m.updateRun(msg)
	case stageHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates on the problem picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		history := NewHistoryModel(m.store, m.width, m.height)
		m.history = &history
		m.stage = stageHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		problem, err := registry.Create(selected.ProblemID)
		if err != nil {
			// Shouldn't happen since the menu only shows registered problems
			return m, nil
		}

		m.problem = problem
		algoMenu := NewAlgorithmMenuModel(problem, m.width, m.height)
		m.algoMenu = &algoMenu
		m.stage = stageAlgorithms
		return m, m.algoMenu.Init()
	}

	return m, cmd
}

// updateAlgoMenu handles updates on the algorithm picker.
func (m SessionModel) updateAlgoMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.algoMenu.Update(msg)
	if algoModel, ok := newModel.(AlgorithmMenuModel); ok {
		m.algoMenu = &algoModel
	}

	if m.algoMenu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.algoMenu.WantsBack() {
		return m.backToProblems()
	}

	if sel := m.algoMenu.Selected(); sel != nil {
		budgets, err := config.LoadBudgets("")
		if err != nil {
			budgets = config.DefaultBudgetConfig()
		}
		config.ApplyBudgetPreset(&budgets, sel.Preset)

		searcher, err := m.problem.NewSearcher(sel.Algorithm.ID, budgets.Options())
		if err != nil {
			// Algorithm list came from the problem itself
			return m.backToProblems()
		}

		runModel := NewRunModel(m.problem, sel.Algorithm, searcher, m.saver(), m.label, m.width, m.height)
		m.runModel = &runModel
		m.stage = stageRun
		return m, m.runModel.Init()
	}

	return m, cmd
}

// updateRun handles updates on the run view.
func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runModel.Update(msg)
	if runModel, ok := newModel.(RunModel); ok {
		m.runModel = &runModel
	}

	if m.runModel.BackToMenu() {
		return m.backToProblems()
	}

	if m.runModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates on the history browser.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = &historyModel
	}

	if m.history.IsGoingBack() {
		return m.backToProblems()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToProblems resets the flow to a fresh problem picker.
func (m SessionModel) backToProblems() (tea.Model, tea.Cmd) {
	m.stage = stageProblems
	m.algoMenu = nil
	m.runModel = nil
	m.history = nil
	m.problem = nil
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

// View renders the current stage.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageAlgorithms:
		return m.algoMenu.View()
	case stageRun:
		return m.runModel.View()
	case stageHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
