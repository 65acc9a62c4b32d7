package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/cards/internal/config"
	"github.com/Makepad-fr/cards/internal/model"
	"github.com/Makepad-fr/cards/internal/state"
	"github.com/Makepad-fr/cards/internal/ui"
)

const (
	cardWidth     = 26 // content + padding, border excluded
	defaultWidth  = 80
	defaultHeight = 24
	minViewport   = 3
)

// Model is the Bubble Tea program over a state store. The store is the single source of
// truth; the model only holds cursor and layout.
type Model struct {
	store  *state.Store
	keys   keyMap
	styles styles
	help   help.Model
	vp     viewport.Model
	prof   *profiler

	width, height int
	card          int // index into the order
	option        int // index into the selected card's options
	details       bool
}

// Option tweaks a Model at construction.
type Option func(*Model)

// WithProfile shows the last render time in the header. Render timings are logged at
// debug either way.
func WithProfile() Option {
	return func(m *Model) { m.prof.show = true }
}

// New builds the program model. SetInitialData runs on Init.
func New(store *state.Store, km config.KeyMappings, opts ...Option) Model {
	m := Model{
		store:  store,
		keys:   newKeyMap(km),
		styles: newStyles(),
		help:   help.New(),
		vp:     viewport.New(defaultWidth, defaultHeight),
		prof:   newProfiler("main", store.Logger()),
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, o := range opts {
		o(&m)
	}
	m.refresh()
	return m
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(store *state.Store, km config.KeyMappings, opts ...Option) error {
	p := tea.NewProgram(New(store, km, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// loadedMsg follows the initial load so the first frame shows the seed.
type loadedMsg struct{}

func (m Model) Init() tea.Cmd {
	m.store.SetInitialData()
	return func() tea.Msg { return loadedMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case loadedMsg:

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Details):
			m.details = !m.details

		case key.Matches(msg, m.keys.PrevCard):
			m.card--
		case key.Matches(msg, m.keys.NextCard):
			m.card++
		case key.Matches(msg, m.keys.PrevOption):
			m.option--
		case key.Matches(msg, m.keys.NextOption):
			m.option++

		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				if keys := it.Options.Keys(); m.option >= 0 && m.option < len(keys) {
					m.store.ToggleChoice(it.ID, keys[m.option])
				}
			}
		case key.Matches(msg, m.keys.Add):
			m.store.AddItem()
			m.card = len(m.store.ItemIDs()) - 1
		case key.Matches(msg, m.keys.Remove):
			m.store.RemoveItem()
		case key.Matches(msg, m.keys.Reverse):
			m.store.ReverseItemIDs()
			m.card = len(m.store.ItemIDs()) - 1 - m.card
		case key.Matches(msg, m.keys.Reset):
			wasReversed := m.store.IsReversed()
			m.store.ResetData()
			if wasReversed {
				m.card = len(m.store.ItemIDs()) - 1 - m.card
			}
		}

	default:
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, cmd
}

// selected returns the item under the card cursor.
func (m Model) selected() (model.Item, bool) {
	ids := m.store.ItemIDs()
	if m.card < 0 || m.card >= len(ids) {
		return model.Item{}, false
	}
	return m.store.Item(ids[m.card])
}

// refresh clamps the cursor and re-renders the card grid into the viewport.
func (m *Model) refresh() {
	app := m.store.AppState()

	m.card = clamp(m.card, 0, len(app.Items)-1)
	opts := 0
	if m.card < len(app.Items) {
		opts = app.Items[m.card].Options.Len()
	}
	m.option = clamp(m.option, 0, opts-1)

	m.vp.Width = m.width
	m.vp.Height = max(m.height-m.chromeHeight(), minViewport)

	start := time.Now()
	grid, selTop, selBottom := m.renderGrid(app.Items)
	m.prof.grid(start)
	m.vp.SetContent(grid)
	switch {
	case selTop < m.vp.YOffset:
		m.vp.SetYOffset(selTop)
	case selBottom > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(selBottom - m.vp.Height)
	}
}

func (m Model) View() string {
	defer m.prof.frame(time.Now())

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	if pane := m.detailsPane(); pane != "" {
		b.WriteString("\n")
		b.WriteString(pane)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// chromeHeight is everything that is not the viewport.
func (m Model) chromeHeight() int {
	h := m.baseChrome()
	if pane := m.detailsPane(); pane != "" {
		h += lipgloss.Height(pane) + 1
	}
	return h
}

// baseChrome is header and help.
func (m Model) baseChrome() int {
	return 2 + lipgloss.Height(m.help.View(m.keys)) + 1
}

func (m Model) header() string {
	t := ui.Current()
	app := m.store.AppState()
	set, unset := 0, 0
	for _, it := range app.Items {
		if it.Options.CountSet() > 0 {
			set++
		} else {
			unset++
		}
	}
	sw := t.SwitchOff
	if app.IsReversed {
		sw = t.SwitchOn
	}
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d   %s %s",
		m.styles.title.Render("Cards"),
		m.styles.success.Render(t.SymSet), set,
		m.styles.pending.Render(t.SymUnset), unset,
		m.styles.accent.Render("Total"), len(app.Items),
		m.styles.muted.Render("Reverse"), sw,
	)
	if m.prof.show {
		h += "   " + m.styles.muted.Render(m.prof.summary())
	}
	return h
}

// renderGrid lays cards out in rows and reports the line span of the selected card's row.
func (m Model) renderGrid(items []model.Item) (string, int, int) {
	if len(items) == 0 {
		return m.styles.empty.Render("no items, press " + m.keys.Add.Help().Key + " to add one"), 0, 0
	}
	cols := max(1, m.width/(cardWidth+2))

	var rows []string
	selTop, selBottom, line := 0, 0, 0
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i, items[i]))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		h := lipgloss.Height(row)
		if m.card >= start && m.card < end {
			selTop, selBottom = line, line+h
		}
		line += h
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), selTop, selBottom
}

func (m Model) renderCard(i int, it model.Item) string {
	t := ui.Current()
	inner := cardWidth - 2
	selected := i == m.card

	lines := []string{
		m.styles.title.Render(ui.Wrap(it.Title(), inner)),
		m.styles.muted.Render(ui.Truncate("#"+it.ID.String(), inner)),
	}
	n := 0
	for k, v := range it.Options.All() {
		box, st := t.BoxUnchecked, m.styles.muted
		if v {
			box, st = t.BoxChecked, m.styles.success
		}
		label := ui.Truncate(k, inner-4)
		if selected && n == m.option {
			label = m.styles.optionCursor.Render(label)
		}
		lines = append(lines, st.Render(box)+" "+label)
		n++
	}
	lines = append(lines, m.styles.muted.Render(ui.ProgressBar(it.Options.CountSet(), it.Options.Len(), inner-6)))

	style := m.styles.card
	if selected {
		style = m.styles.cardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// detailsPane is capped so the viewport keeps minViewport lines; it is hidden when not
// even one body line fits.
func (m Model) detailsPane() string {
	if !m.details {
		return ""
	}
	it, ok := m.selected()
	if !ok {
		return ""
	}
	room := m.height - m.baseChrome() - minViewport - 1 - 3 // separator, border, title
	if room < 1 {
		return ""
	}
	body := ui.Markdown(it.Description, max(m.width-6, 20))
	if body == "" {
		body = m.styles.muted.Render("(no description)")
	}
	if lines := strings.Split(body, "\n"); len(lines) > room {
		body = strings.Join(lines[:room], "\n")
	}
	return m.styles.details.Render(m.styles.title.Render(it.Title()) + "\n" + body)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
