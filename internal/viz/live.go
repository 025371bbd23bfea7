package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/accrete/internal/accrete"
)

const (
	width           = 72
	height          = 12
	historyCapacity = 2000
	frameRate       = time.Second / 30

	minLogAU = -1.0
	maxLogAU = 2.0
)

// Snapshot is the disk and planet set after one step, kept for replay.
type Snapshot struct {
	Event   accrete.Event
	Bands   accrete.Bands
	Planets accrete.Planets
	Nuclei  int
}

type TickMsg time.Time

// Builder creates a fresh simulator; the live view calls it again on restart.
type Builder func() (*accrete.Simulator, error)

// Model steps a simulator on every tick and renders the disk, the planets
// and the most recent nucleus.
type Model struct {
	build         Builder
	sim           *accrete.Simulator
	canvas        *Canvas
	running       bool
	done          bool
	err           error
	perTick       int
	merges        int
	last          *accrete.Event
	massHistory   []float64
	history       []Snapshot
	playHead      int
	showHelp      bool
	width, height int
}

func NewModel(build Builder) (Model, error) {
	sim, err := build()
	if err != nil {
		return Model{}, err
	}
	return Model{
		build:       build,
		sim:         sim,
		canvas:      NewCanvas(width, height),
		running:     true,
		done:        sim.Done(),
		perTick:     1,
		massHistory: make([]float64, 0, historyCapacity),
		history:     make([]Snapshot, 0, historyCapacity),
		playHead:    -1,
		width:       width,
		height:      height,
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "+", "=":
			m.perTick = min(m.perTick*2, 256)
		case "-", "_":
			m.perTick = max(m.perTick/2, 1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				for i := 0; i < m.perTick && !m.done && m.err == nil; i++ {
					m.step()
				}
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

// step injects one nucleus.
func (m *Model) step() {
	ev, err := m.sim.Step()
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.last = &ev
	if ev.Merged {
		m.merges++
	}
	m.done = m.sim.Done()

	planets := m.sim.Planets()
	m.massHistory = append(m.massHistory, planets.TotalMass())
	if len(m.massHistory) > historyCapacity {
		m.massHistory = m.massHistory[1:]
	}

	m.history = append(m.history, Snapshot{
		Event:   ev,
		Bands:   m.sim.Bands(),
		Planets: planets,
		Nuclei:  m.sim.Nuclei(),
	})
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// scrub changes the playback position in history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) > 0 {
			m.playHead = len(m.history) - 1
			m.running = false
		} else {
			return
		}
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset rebuilds the simulator, which replays the same seed.
func (m *Model) reset() {
	sim, err := m.build()
	if err != nil {
		m.err = err
		return
	}
	m.sim = sim
	m.done = sim.Done()
	m.err = nil
	m.merges = 0
	m.last = nil
	m.massHistory = m.massHistory[:0]
	m.history = m.history[:0]
	m.playHead = -1
	m.running = true
}

// current returns what should be on screen: the replayed snapshot or the
// live simulator state.
func (m Model) current() Snapshot {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead]
	}
	snap := Snapshot{
		Bands:   m.sim.Bands(),
		Planets: m.sim.Planets(),
		Nuclei:  m.sim.Nuclei(),
	}
	if m.last != nil {
		snap.Event = *m.last
	}
	return snap
}

// project maps a heliocentric distance onto a canvas column.
func (m Model) project(au float64) int {
	if au <= 0 {
		return -1
	}
	pw := float64(m.canvas.PixelWidth() - 1)
	return int(math.Round((math.Log10(au) - minLogAU) / (maxLogAU - minLogAU) * pw))
}

// draw renders the disk as two strips (dust above, gas below) and the
// planets as circles on the center line.
func (m Model) draw(snap Snapshot) {
	c := m.canvas
	c.Clear()
	ph := c.PixelHeight()
	dustY, gasY, midY := 1, 3, ph/2+2

	for _, b := range snap.Bands {
		x0, x1 := m.project(b.Inner), m.project(b.Outer)
		if x0 < 0 {
			x0 = 0
		}
		if b.Dust {
			c.DrawLine(x0, dustY, x1, dustY)
		}
		if b.Gas {
			c.DrawLine(x0, gasY, x1, gasY)
		}
	}

	scale := float64(c.PixelWidth()) / (maxLogAU - minLogAU)
	for _, p := range snap.Planets {
		r := int(math.Round(math.Cbrt(p.Mass) * scale))
		c.DrawCircle(m.project(p.Axis), midY, min(r, ph/2-3), p.GasGiant)
	}

	if snap.Nuclei > 0 {
		x := m.project(snap.Event.Nucleus.Axis)
		c.DrawLine(x, ph-3, x, ph-1)
	}
}

// axisLabels places decade labels under the canvas columns they mark.
func axisLabels(cols int) string {
	line := []rune(strings.Repeat(" ", cols+4))
	decades := int(maxLogAU - minLogAU)
	for i, label := range []string{"0.1", "1", "10", "100 AU"} {
		at := i * (cols - 1) / decades
		if i == decades {
			at = cols - 3
		}
		copy(line[at:], []rune(label))
	}
	return valueStyle.Render(strings.TrimRight(string(line), " "))
}

// View renders the TUI interface.
func (m Model) View() string {
	snap := m.current()
	m.draw(snap)
	canvasView := canvasStyle.Render(m.canvas.String() + axisLabels(m.width))

	status := "ACCRETING"
	switch {
	case m.err != nil:
		status = "ERROR: " + m.err.Error()
	case m.playHead != -1:
		status = fmt.Sprintf("REPLAY (%d/%d)", m.playHead+1, len(m.history))
	case m.done:
		status = "DISK CLEARED"
	case !m.running:
		status = "PAUSED"
	}

	star := m.sim.Star()
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("STAR %.2g M☉ %.2g L☉", star.Mass, star.Luminosity)) + "\n")
	s.WriteString(status + "\n\n")
	if len(m.massHistory) > 1 {
		chart := asciigraph.Plot(m.massHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Planet mass"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Nuclei") + valueStyle.Render(fmt.Sprintf("%d", snap.Nuclei)) + "\n")
	s.WriteString(labelStyle.Render("Planets") + valueStyle.Render(fmt.Sprintf("%d (%d giant)", len(snap.Planets), snap.Planets.Giants())) + "\n")
	s.WriteString(labelStyle.Render("Bands") + valueStyle.Render(fmt.Sprintf("%d", len(snap.Bands))) + "\n")
	s.WriteString(labelStyle.Render("Merges") + valueStyle.Render(fmt.Sprintf("%d", m.merges)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d/frame", m.perTick)) + "\n")
	if snap.Nuclei > 0 {
		ev := snap.Event
		verdict := "rejected"
		if ev.Accepted {
			verdict = fmt.Sprintf("grew to %.3g M⊕", ev.Planet.EarthMass())
		}
		s.WriteString(labelStyle.Render("Last") + valueStyle.Render(fmt.Sprintf("%.2f AU %s", ev.Nucleus.Axis, verdict)) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\n+/-:Speed [ ]:Replay ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart from same seed   ║
║  +/-      - Nuclei per frame         ║
║  [        - Replay backward          ║
║  ]        - Replay forward           ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Done reports whether the disk has been cleared.
func (m Model) Done() bool { return m.done }

// Err returns the error that stopped the run, if any.
func (m Model) Err() error { return m.err }
