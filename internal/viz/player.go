package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/playback"
)

// Speeds is the ladder walked by the +/- keys.
var Speeds = []float64{0.25, 0.5, 1, 2, 4}

// StateMsg carries a controller state change into the event loop.
type StateMsg playback.State

// BackMsg asks an enclosing menu to close the player.
type BackMsg struct{}

var (
	panelStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle  = lipgloss.NewStyle().MarginTop(1)
)

// Player steps through one algorithm trace.
type Player struct {
	name    string
	summary string
	lesson  *lesson.Lesson[algorithms.Step]
	theme   Theme
	width   int
	keys    playerKeys
	help    help.Model
	changes chan playback.State
	done    chan struct{}
}

// NewPlayer wires a lesson's change hook into the player. The player owns
// the lesson from here on; release it with Close.
func NewPlayer(a algorithms.Algorithm, l *lesson.Lesson[algorithms.Step], th Theme) Player {
	p := Player{
		name:    a.Name,
		summary: a.Summary,
		lesson:  l,
		theme:   th,
		width:   80,
		keys:    newPlayerKeys(),
		help:    help.New(),
		changes: make(chan playback.State, 1),
		done:    make(chan struct{}),
	}
	changes := p.changes
	l.OnChange(func(s playback.State) {
		select {
		case changes <- s:
		default:
		}
	})
	return p
}

func (p Player) Init() tea.Cmd { return p.waitForChange() }

// waitForChange blocks until the controller reports a change. Changes that
// arrive while one is queued are coalesced; the view reads live state.
func (p Player) waitForChange() tea.Cmd {
	changes, done := p.changes, p.done
	return func() tea.Msg {
		select {
		case s := <-changes:
			return StateMsg(s)
		case <-done:
			return nil
		}
	}
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width
	case StateMsg:
		return p, p.waitForChange()
	}
	return p, nil
}

func (p Player) handleKey(msg tea.KeyMsg) (Player, tea.Cmd) {
	c := p.lesson.Controller()
	switch {
	case key.Matches(msg, p.keys.Quit):
		return p, tea.Quit
	case key.Matches(msg, p.keys.Back):
		return p, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, p.keys.Toggle):
		c.Toggle()
	case key.Matches(msg, p.keys.Forward):
		c.StepForward()
	case key.Matches(msg, p.keys.Backward):
		c.StepBackward()
	case key.Matches(msg, p.keys.Reset):
		c.Reset()
	case key.Matches(msg, p.keys.Start):
		c.Seek(0)
	case key.Matches(msg, p.keys.End):
		c.Seek(c.State().Length)
	case key.Matches(msg, p.keys.Seek):
		d := int(msg.String()[0] - '0')
		c.Seek(c.State().Length * d / 9)
	case key.Matches(msg, p.keys.Faster):
		c.SetSpeed(nextSpeed(c.State().Speed, 1))
	case key.Matches(msg, p.keys.Slower):
		c.SetSpeed(nextSpeed(c.State().Speed, -1))
	case key.Matches(msg, p.keys.Theme):
		p.theme = p.theme.Next()
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	}
	return p, nil
}

// nextSpeed moves one rung up (dir > 0) or down the speed ladder.
func nextSpeed(cur float64, dir int) float64 {
	if dir > 0 {
		for _, s := range Speeds {
			if s > cur {
				return s
			}
		}
		return Speeds[len(Speeds)-1]
	}
	for i := len(Speeds) - 1; i >= 0; i-- {
		if Speeds[i] < cur {
			return Speeds[i]
		}
	}
	return Speeds[0]
}

// Close stops the change listener and disposes the lesson's controller.
func (p Player) Close() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
	p.lesson.Close()
}

func (p Player) View() string {
	th := p.theme
	st := p.lesson.State()
	step, _ := p.lesson.Current()

	var b strings.Builder
	b.WriteString(GradientText(strings.ToUpper(p.name), th.Primary, th.Secondary) + "  ")
	b.WriteString(th.style(th.Muted).Render(p.summary) + "\n\n")

	b.WriteString(p.status(st) + "  ")
	b.WriteString(th.style(th.Text).Render(fmt.Sprintf("step %d/%d", st.Step, st.Length)) + "  ")
	b.WriteString(th.style(th.Muted).Render(fmt.Sprintf("%.2fx", st.Speed)) + "\n")
	b.WriteString(ProgressBar(st.Progress(), 40, th) + "\n\n")

	b.WriteString(renderValues(step, th) + "\n\n")
	if chart := renderPlot(step, th); chart != "" {
		b.WriteString(chart + "\n\n")
	}
	b.WriteString(th.style(th.Secondary).Render("» "+step.Note) + "\n")

	b.WriteString(Separator(min(p.width-4, 60), th) + "\n")
	b.WriteString(helpStyle.Render(p.help.View(p.keys)))
	return panelStyle.Render(b.String())
}

func (p Player) status(st playback.State) string {
	th := p.theme
	switch {
	case st.Playing:
		return th.style(th.Success).Bold(true).Render("PLAYING")
	case st.AtEnd():
		return th.style(th.Accent).Bold(true).Render("DONE")
	default:
		return th.style(th.Warning).Bold(true).Render("PAUSED")
	}
}
