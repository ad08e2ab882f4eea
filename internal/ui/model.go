package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/arcmenu/internal/backend"
	"github.com/atomicstack/arcmenu/internal/history"
	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/atomicstack/arcmenu/internal/sysinfo"
	"github.com/atomicstack/arcmenu/internal/theme"
	"github.com/atomicstack/arcmenu/internal/ui/command"
	uistate "github.com/atomicstack/arcmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Reloaded is what a Loader produces: fresh settings and categories, and the
// files to watch from now on.
type Reloaded struct {
	Settings   settings.Config
	Categories *menu.CategoryMap
	Targets    []backend.Target
}

// Loader re-reads the settings and the menu source after a watched file
// changes.
type Loader func() (Reloaded, error)

// Options configures a Model.
type Options struct {
	Settings   settings.Config
	Categories *menu.CategoryMap
	// Width and Height pin the terminal size when positive.
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	Resolver   *icon.Resolver
	Launcher   *launch.Launcher
	History    *history.Store
	Host       sysinfo.Info
	Reload     Loader
	// Copy replaces the system clipboard writer.
	Copy func(string) error
}

// Model implements the Bubble Tea model for the application launcher.
type Model struct {
	settings   settings.Config
	categories *menu.CategoryMap
	recent     []menu.Entry
	styles     *theme.Styles

	sidebar       uistate.Sidebar
	sidebarOffset int
	sidebarIcons  map[string]*icon.Icon
	selection     *uistate.Selection
	grid          *uistate.Grid
	populator     *uistate.Populator
	query         uistate.Query
	bestMatch     int
	hoverTile     int

	prompt            *contextPrompt
	suppressBlurClose bool
	closing           bool
	closeSeq          uint64

	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendLastErr    string
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry *launch.Registry
	bus      *command.Bus
	resolver *icon.Resolver
	launcher *launch.Launcher
	history  *history.Store
	host     sysinfo.Info
	profile  *icon.Icon
	reload   Loader
	copyFn   func(string) error

	// after schedules msg to be delivered once d has elapsed.
	after func(d time.Duration, msg tea.Msg) tea.Cmd
}

// NewModel builds the launcher state: the sidebar lists the categories in
// display order and the first of them is selected.
func NewModel(opts Options) *Model {
	cfg := opts.Settings
	if cfg == nil {
		cfg = settings.Defaults()
	}
	categories := opts.Categories
	if categories == nil {
		categories = menu.NewCategoryMap()
	}
	m := &Model{
		settings:   cfg,
		categories: categories,
		styles:     theme.New(cfg.Colors()),
		bestMatch:  -1,
		hoverTile:  -1,
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		registry:   launch.BuildRegistry(),
		bus:        command.New(),
		resolver:   opts.Resolver,
		launcher:   opts.Launcher,
		history:    opts.History,
		host:       opts.Host,
		reload:     opts.Reload,
		copyFn:     opts.Copy,
		after:      tickAfter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.loadRecent()
	names := m.displayNames()
	m.sidebar.SetNames(names)
	first := ""
	if len(names) > 0 {
		first = names[0]
	}
	m.selection = uistate.NewSelection(first)
	m.grid = uistate.NewGrid(m.layout().cols)
	m.populator = uistate.NewPopulator(m.grid, cfg.Behavior().BatchSize)

	c := cursor.New()
	if m.styles.Cursor != nil {
		c.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		c.TextStyle = m.styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.showCategory(m.selection.Current),
		m.loadSidebarIconsCmd(),
		m.loadProfileCmd(),
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):         m.handleBlurMsg,
		reflect.TypeOf(hoverTimerMsg{}):       m.handleHoverTimerMsg,
		reflect.TypeOf(restoreTimerMsg{}):     m.handleRestoreTimerMsg,
		reflect.TypeOf(populateBatchMsg{}):    m.handlePopulateBatchMsg,
		reflect.TypeOf(sidebarIconsMsg{}):     m.handleSidebarIconsMsg,
		reflect.TypeOf(profileLoadedMsg{}):    m.handleProfileLoadedMsg,
		reflect.TypeOf(launch.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(closeMsg{}):            m.handleCloseMsg,
		reflect.TypeOf(backendEventMsg{}):     m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):      m.handleBackendDoneMsg,
		reflect.TypeOf(reloadedMsg{}):         m.handleReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// displayNames lists the sidebar categories: menu categories in display
// order followed by the recently launched category when it has entries.
func (m *Model) displayNames() []string {
	names := menu.OrderedCategories(m.categories, m.settings.ExcludedCategories())
	if len(m.recent) > 0 {
		names = append(names, history.Category)
	}
	return names
}

// searchScope lists the categories a search walks. The recent category
// only repeats entries found elsewhere.
func (m *Model) searchScope() []string {
	names := make([]string, 0, len(m.sidebar.Names))
	for _, name := range m.sidebar.Names {
		if name == history.Category {
			continue
		}
		names = append(names, name)
	}
	return names
}

func (m *Model) entriesFor(category string) []menu.Entry {
	if category == history.Category {
		return m.recent
	}
	entries, _ := m.categories.Get(category)
	return entries
}

func (m *Model) loadRecent() {
	m.recent = nil
	opts := m.settings.History()
	if m.history == nil || !opts.Enabled {
		return
	}
	entries, err := m.history.Entries(opts.Limit)
	if err != nil {
		logging.Error(err)
		return
	}
	m.recent = entries
}

func (m *Model) iconSize() int {
	if m.resolver == nil {
		return 0
	}
	return m.settings.Window().IconSize
}

func (m *Model) actionContext() launch.Context {
	paths := m.settings.Paths()
	return launch.Context{
		Launcher:       m.launcher,
		ProfileManager: paths.ProfileManager,
		ConfigTool:     paths.ConfigTool,
		ShutdownCmd:    paths.ShutdownCmd,
		WebSearchURL:   m.settings.WebSearchURL(),
		Query:          m.query.Trimmed(),
		Copy:           m.copyFn,
	}
}
