package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/nconklindev/stockcell/internal/catalog"
	"github.com/nconklindev/stockcell/internal/importer"
	"github.com/nconklindev/stockcell/internal/notify"
	"github.com/nconklindev/stockcell/internal/search"
	"github.com/nconklindev/stockcell/internal/types"
	"github.com/nconklindev/stockcell/internal/watch"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type state int

const (
	stateFilePicker state = iota
	stateLoading
	stateBrowse
)

type tab int

const (
	tabSearch tab = iota
	tabCatalog
)

const toastDuration = 4 * time.Second

// Options wires the model to the rest of the application. Only Store is
// required.
type Options struct {
	Store   *catalog.Store
	Loader  *importer.Loader
	Toasts  *notify.Recorder
	Logger  *zap.Logger
	Variant types.Variant
	// File is imported on start when set.
	File string
	// Watch re-imports the loaded file whenever it changes on disk.
	Watch bool
}

type Model struct {
	state       state
	tab         tab
	filepicker  filepicker.Model
	spinner     spinner.Model
	input       textinput.Model
	table       table.Model
	store       *catalog.Store
	loader      *importer.Loader
	toasts      *notify.Recorder
	logger      *zap.Logger
	variant     types.Variant
	sourceFile  string
	loadingFile string
	watch       bool
	watcher     *fileWatcher
	watchArmed  bool
	loading     bool
	queued      *loadRequest
	result      search.Result
	filtered    []types.Product
	toast       *types.Notification
	toastID     int
	width       int
	height      int
}

type fileLoadedMsg struct {
	path   string
	picked bool
	result *types.ImportResult
	err    error
}

// loadRequest is an import waiting for the one in flight to finish.
type loadRequest struct {
	path   string
	picked bool
}

type fileChangedMsg struct {
	path string
}

type toastExpiredMsg struct {
	id int
}

func NewModel(opts Options) Model {
	if opts.Variant == 0 {
		opts.Variant = types.VariantClassic
	}
	if opts.Toasts == nil {
		opts.Toasts = &notify.Recorder{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Loader == nil {
		opts.Loader = &importer.Loader{
			Store:    opts.Store,
			Notifier: opts.Toasts,
			Logger:   opts.Logger,
			Variant:  opts.Variant,
		}
	}

	fp := filepicker.New()
	// .xls is listed so that picking one reports a format error instead
	// of being silently unselectable.
	fp.AllowedTypes = append(slices.Clone(importer.SupportedExtensions), ".xls")
	fp.CurrentDirectory, _ = os.Getwd()
	if opts.File != "" {
		if abs, err := filepath.Abs(opts.File); err == nil {
			fp.CurrentDirectory = filepath.Dir(abs)
		}
	}

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accentColor)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(softColor)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(softColor)
	fp.Styles.File = lipgloss.NewStyle().Foreground(whiteColor)
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(mutedColor)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(mutedColor)

	ti := textinput.New()
	ti.Placeholder = "Enter a product code or article..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	tbl := table.New(
		table.WithColumns(catalogColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(mutedColor).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(whiteColor).
		Background(accentColor).
		Bold(false)
	tbl.SetStyles(ts)

	m := Model{
		state:      stateFilePicker,
		filepicker: fp,
		spinner:    sp,
		input:      ti,
		table:      tbl,
		store:      opts.Store,
		loader:     opts.Loader,
		toasts:     opts.Toasts,
		logger:     opts.Logger,
		variant:    opts.Variant,
		watch:      opts.Watch,
	}

	switch {
	case opts.File != "":
		m.state = stateLoading
		m.loadingFile = opts.File
		m.loading = true
	case m.store.Len() > 0:
		m.state = stateBrowse
	}

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.filepicker.Init(), textinput.Blink}
	if m.state == stateLoading {
		cmds = append(cmds, m.loadFile(m.loadingFile, true), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for title, toast, tabs, input, legend and help
		height := msg.Height - 18
		if height < 5 {
			height = 5
		}

		m.filepicker.SetHeight(height)
		m.table.SetHeight(height)
		m.input.Width = max(20, msg.Width-12)

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.stopWatching()
			return m, tea.Quit
		}

		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "q":
				m.stopWatching()
				return m, tea.Quit
			case "ctrl+o":
				m.state = stateBrowse
				return m, nil
			}

		case stateLoading:
			return m, nil

		case stateBrowse:
			return m.updateBrowseKey(msg)
		}

	case fileLoadedMsg:
		m.loading = false
		// Watch reloads leave the screen alone; only the import the user
		// is waiting on moves it to browse.
		if msg.picked && m.state == stateLoading && msg.path == m.loadingFile {
			m.state = stateBrowse
			m.loadingFile = ""
		}

		var cmds []tea.Cmd
		if msg.err == nil {
			m.sourceFile = msg.result.Source
			cmds = append(cmds, m.ensureWatching(msg.path))
		}

		m.refresh()
		cmds = append(cmds, m.showToast())

		if next := m.queued; next != nil {
			m.queued = nil
			if next.picked || (m.watcher != nil && m.watcher.path == next.path) {
				cmds = append(cmds, m.startLoad(next.path, next.picked))
			}
		}
		if m.watcher != nil && !m.watchArmed {
			m.watchArmed = true
			cmds = append(cmds, m.watcher.wait())
		}
		return m, tea.Batch(cmds...)

	case fileChangedMsg:
		if m.watcher == nil || msg.path != m.watcher.path {
			return m, nil
		}
		// The watcher is re-armed once this reload lands.
		m.watchArmed = false
		cmd := m.startLoad(msg.path, false)
		return m, cmd

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateFilePicker:
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			pickCmd := m.pickFile(path)
			return m, pickCmd
		}

		return m, cmd

	case stateBrowse:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+o":
		m.state = stateFilePicker
		return m, m.filepicker.Init()

	case "tab", "shift+tab":
		if m.variant == types.VariantClassic {
			if m.tab == tabSearch {
				m.tab = tabCatalog
			} else {
				m.tab = tabSearch
			}
		}
		return m, nil

	case "esc":
		m.input.SetValue("")
		m.refresh()
		return m, nil

	case "up", "down", "pgup", "pgdown":
		if m.tab == tabCatalog {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-evaluates the query against the current product list.
func (m *Model) refresh() {
	products := m.store.Snapshot()
	query := m.input.Value()

	m.result = search.Lookup(query, products)
	m.filtered = search.Filter(query, products)
	m.table.SetRows(tableRows(m.filtered))
	m.table.SetCursor(0)
}

// pickFile shows the loading screen for a file the user selected.
func (m *Model) pickFile(path string) tea.Cmd {
	m.state = stateLoading
	m.loadingFile = path
	return tea.Batch(m.startLoad(path, true), m.spinner.Tick)
}

// startLoad runs at most one import at a time. A request made while one is
// in flight is queued; a picked file takes precedence over a watch reload.
func (m *Model) startLoad(path string, picked bool) tea.Cmd {
	if m.loading {
		if picked || m.queued == nil {
			m.queued = &loadRequest{path: path, picked: picked}
		}
		return nil
	}
	m.loading = true
	return m.loadFile(path, picked)
}

func (m Model) loadFile(path string, picked bool) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		result, err := loader.Load(path)
		return fileLoadedMsg{path: path, picked: picked, result: result, err: err}
	}
}

func (m *Model) showToast() tea.Cmd {
	n, ok := m.toasts.Last()
	if !ok {
		return nil
	}

	m.toast = &n
	m.toastID++
	id := m.toastID

	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) ensureWatching(path string) tea.Cmd {
	if !m.watch {
		return nil
	}
	if m.watcher != nil && m.watcher.path == path {
		return nil
	}

	m.stopWatching()
	m.watcher = startWatcher(path, m.logger)
	m.watchArmed = true
	return m.watcher.wait()
}

func (m *Model) stopWatching() {
	if m.watcher != nil {
		m.watcher.stop()
		m.watcher = nil
	}
	m.watchArmed = false
}

type fileWatcher struct {
	path    string
	ctx     context.Context
	cancel  context.CancelFunc
	changes chan struct{}
}

func startWatcher(path string, logger *zap.Logger) *fileWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &fileWatcher{
		path:    path,
		ctx:     ctx,
		cancel:  cancel,
		changes: make(chan struct{}, 1),
	}

	go func() {
		err := watch.Watch(ctx, path, watch.DefaultDebounce, logger, func() {
			select {
			case w.changes <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logger.Warn("watch stopped", zap.String("file", path), zap.Error(err))
		}
	}()

	return w
}

func (w *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changes:
			return fileChangedMsg{path: w.path}
		case <-w.ctx.Done():
			return nil
		}
	}
}

func (w *fileWatcher) stop() {
	w.cancel()
}

func catalogColumns() []table.Column {
	return []table.Column{
		{Title: "Zone", Width: 6},
		{Title: "Article", Width: 12},
		{Title: "Name", Width: 32},
		{Title: "Cell", Width: 10},
		{Title: "Qty", Width: 8},
	}
}

func tableRows(products []types.Product) []table.Row {
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, table.Row{
			string(zone(p.Zone)),
			p.Article,
			p.Name,
			p.Cell,
			importer.FormatQuantity(p.Quantity),
		})
	}
	return rows
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateLoading:
		return m.viewLoading()
	case stateBrowse:
		return m.viewBrowse()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📦 Stockcell - Warehouse Lookup"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select an XLSX or CSV inventory file"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("ctrl+o: back to search • q: quit"))

	return s.String()
}

func (m Model) viewLoading() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📦 Loading..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Reading %s", m.spinner.View(), filepath.Base(m.loadingFile)))

	return BoxStyle.Render(s.String())
}

func (m Model) viewBrowse() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📦 Stockcell - Warehouse Lookup"))
	s.WriteString("\n")

	source := "sample data"
	if m.sourceFile != "" {
		source = filepath.Base(m.sourceFile)
	}
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d products • %s", m.store.Len(), source)))
	s.WriteString("\n")

	if m.toast != nil {
		s.WriteString(ToastStyle(m.toast.Severity).Render(m.toast.Title + ": " + m.toast.Description))
		s.WriteString("\n")
	}

	if m.variant == types.VariantClassic {
		s.WriteString(m.viewTabs())
		s.WriteString("\n\n")
	}

	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	if m.tab == tabCatalog {
		s.WriteString(m.table.View())
		s.WriteString("\n\n")
		s.WriteString(viewLegend())
	} else {
		s.WriteString(m.viewResult())
	}

	help := "type to search • esc: clear • ctrl+o: load file • ctrl+c: quit"
	if m.variant == types.VariantClassic {
		help = "type to search • tab: search/catalog • ↑/↓: browse • esc: clear • ctrl+o: load file • ctrl+c: quit"
	}
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(help))

	return s.String()
}

func (m Model) viewTabs() string {
	searchTab, catalogTab := InactiveTabStyle, InactiveTabStyle
	if m.tab == tabSearch {
		searchTab = ActiveTabStyle
	} else {
		catalogTab = ActiveTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		searchTab.Render("Search"),
		catalogTab.Render("Catalog"),
	)
}

func (m Model) viewResult() string {
	switch m.result.State {
	case search.StateFound:
		return m.viewProduct(m.result.Product)
	case search.StateNotFound:
		return NotFoundStyle.Render(
			ErrorStyle.Render("Product not found") + "\n" +
				LabelStyle.Render("Check the code or article"),
		)
	}
	return ""
}

func (m Model) viewProduct(p types.Product) string {
	cell := p.Cell
	if cell == "" {
		cell = "(no cell)"
	}
	location := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("📍 Location"),
		CellStyle.Render(cell),
	)

	if m.variant == types.VariantExtended {
		lines := []string{
			LabelStyle.Render("Code: " + p.ID + " • Article: " + p.Article),
			SuccessStyle.Render(p.Name),
			"",
			location,
		}

		keys := make([]string, 0, len(p.Extra))
		for k := range p.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			lines = append(lines, "")
		}
		for _, k := range keys {
			lines = append(lines, LabelStyle.Render(k+": ")+p.Extra[k])
		}

		return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		ZoneBadge(p.Zone),
		"  ",
		LabelStyle.Render("Article: "+p.Article),
	)
	quantity := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("📦 Quantity"),
		SuccessStyle.Render(importer.FormatQuantity(p.Quantity)+" pcs"),
	)

	return CardStyle(p.Zone).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		SuccessStyle.Render(p.Name),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, location, "      ", quantity),
	))
}

func viewLegend() string {
	items := make([]string, 0, len(types.Zones))
	for _, z := range types.Zones {
		items = append(items, ZoneBadge(z)+" "+LabelStyle.Render(types.ZoneLabel(z))+"   ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
