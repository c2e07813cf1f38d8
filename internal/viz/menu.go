package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/playback"
)

// Options configures the players a menu opens.
type Options struct {
	BaseInterval time.Duration
	Speed        float64
	Theme        Theme
	Logger       *slog.Logger
	Scheduler    playback.Scheduler
}

func (o Options) playbackOptions() []playback.Option {
	opts := []playback.Option{
		playback.WithBaseInterval(o.BaseInterval),
		playback.WithSpeed(o.Speed),
		playback.WithLogger(o.Logger),
	}
	if o.Scheduler != nil {
		opts = append(opts, playback.WithScheduler(o.Scheduler))
	}
	return opts
}

// Menu lists the registered algorithms and opens a player on selection.
type Menu struct {
	registry *algorithms.Registry
	names    []string
	cursor   int
	opts     Options
	player   *Player
	err      error
	width    int
	keys     menuKeys
	help     help.Model
}

func NewMenu(r *algorithms.Registry, opts Options) Menu {
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	return Menu{
		registry: r,
		names:    r.Names(),
		opts:     opts,
		width:    80,
		keys:     newMenuKeys(),
		help:     help.New(),
	}
}

// OpenPlayer builds the default trace of a registered algorithm.
func OpenPlayer(r *algorithms.Registry, name string, in *algorithms.Input, opts Options) (Player, error) {
	a, err := r.Get(name)
	if err != nil {
		return Player{}, err
	}
	input := a.Default
	if in != nil {
		input = *in
	}
	tr, err := r.Build(name, input)
	if err != nil {
		return Player{}, err
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	l := lesson.New(tr, opts.playbackOptions()...)
	return NewPlayer(a, l, opts.Theme), nil
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.help.Width = ws.Width
	}
	if m.player != nil {
		if _, ok := msg.(BackMsg); ok {
			m.opts.Theme = m.player.theme
			m.player.Close()
			m.player = nil
			return m, nil
		}
		next, cmd := m.player.Update(msg)
		p := next.(Player)
		m.player = &p
		return m, cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(km)
	}
	return m, nil
}

func (m Menu) handleKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Theme):
		m.opts.Theme = m.opts.Theme.Next()
	case key.Matches(msg, m.keys.Open):
		if len(m.names) == 0 {
			return m, nil
		}
		p, err := OpenPlayer(m.registry, m.names[m.cursor], nil, m.opts)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.player = &p
		return m, p.Init()
	}
	return m, nil
}

// Close releases an open player. Call it after the program exits.
func (m Menu) Close() {
	if m.player != nil {
		m.player.Close()
	}
}

func (m Menu) View() string {
	if m.player != nil {
		return m.player.View()
	}

	th := m.opts.Theme
	var b strings.Builder
	b.WriteString(GradientText("ALGOVIZ", th.Primary, th.Secondary) + "\n")
	b.WriteString(th.style(th.Muted).Render("step through classic algorithms") + "\n\n")

	for i, name := range m.names {
		a, _ := m.registry.Get(name)
		line := fmt.Sprintf("%-16s %s", name, a.Summary)
		if i == m.cursor {
			b.WriteString(th.style(th.Accent).Bold(true).Render("▸ "+line) + "\n")
			continue
		}
		b.WriteString(th.style(th.Text).Render("  "+line) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + th.style(th.Warning).Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + Separator(min(m.width-4, 60), th) + "\n")
	b.WriteString(th.style(th.Muted).Render("theme: "+th.Name) + "\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return panelStyle.Render(b.String())
}
