package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dvllgmz/escapelab/internal/escape"
	"github.com/dvllgmz/escapelab/internal/plane"
	"github.com/dvllgmz/escapelab/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type explorer struct {
	variant       string
	c             complex128
	center        complex128
	viewHeight    float64
	maxIterations int
	threshold     float64

	width  int
	height int

	frame    string
	renderMs float64
	err      error
}

// NewExplorer builds the interactive viewer. For the julia variant c is
// the fixed parameter; the mandelbrot variant ignores it.
func NewExplorer(variant string, c complex128) tea.Model {
	center := complex(-0.625, 0)
	if variant == "julia" {
		center = 0
	}
	return explorer{
		variant:       variant,
		c:             c,
		center:        center,
		viewHeight:    2.5,
		maxIterations: 50,
		threshold:     0.05,
	}
}

func (m explorer) Init() tea.Cmd { return nil }

func (m explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.rerender(), nil

	case tea.KeyMsg:
		pan := m.viewHeight * 0.1

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.center -= complex(pan, 0)
		case "right", "l":
			m.center += complex(pan, 0)
		case "up", "k":
			m.center += complex(0, pan)
		case "down", "j":
			m.center -= complex(0, pan)
		case "+", "=":
			m.viewHeight *= 0.8
		case "-", "_":
			m.viewHeight *= 1.25
		case "[":
			if m.maxIterations > 10 {
				m.maxIterations -= 10
			}
		case "]":
			m.maxIterations += 10
		case "t":
			if m.threshold > 0.011 {
				m.threshold -= 0.01
			}
		case "T":
			m.threshold += 0.01
		case "v":
			if m.variant == "mandelbrot" {
				m.variant = "julia"
				m.center = 0
			} else {
				m.variant = "mandelbrot"
				m.center = complex(-0.625, 0)
			}
		case "r":
			return m.reset(), nil
		default:
			return m, nil
		}
		return m.rerender(), nil
	}

	return m, nil
}

func (m explorer) reset() explorer {
	fresh := NewExplorer(m.variant, m.c).(explorer)
	fresh.width = m.width
	fresh.height = m.height
	return fresh.rerender()
}

// rerender recomputes the visible grid and rasterizes it. One braille
// character covers 2x4 sub-pixels, so the sampling step comes from the
// canvas height in dots.
func (m explorer) rerender() explorer {
	canvasW := m.width - 2
	canvasH := m.height - 3
	if canvasW < 8 || canvasH < 4 {
		m.frame = ""
		return m
	}

	step := m.viewHeight / float64(canvasH*4)
	halfW := step * float64(canvasW*2) / 2
	halfH := m.viewHeight / 2

	start := time.Now()

	grid, err := plane.Generate(
		m.center+complex(-halfW, halfH),
		m.center+complex(halfW, -halfH),
		step,
	)
	if err != nil {
		m.err = err
		return m
	}

	renderer, err := escape.GetVariant(m.variant)
	if err != nil {
		m.err = err
		return m
	}

	in, err := renderer(grid, m.c, m.maxIterations)
	if err != nil {
		m.err = err
		return m
	}

	m.err = nil
	m.frame = viz.FromIntensity(in, canvasW, canvasH, m.threshold).String()
	m.renderMs = float64(time.Since(start).Microseconds()) / 1000.0
	return m
}

func (m explorer) View() string {
	if m.err != nil {
		return red.Render(fmt.Sprintf("render failed: %v", m.err)) + "\n" + dim.Render("q to quit")
	}
	if m.frame == "" {
		return dim.Render("terminal too small")
	}

	var sb strings.Builder

	title := cyan.Render(m.variant)
	if m.variant == "julia" {
		title += dim.Render(fmt.Sprintf("  c=%.4g%+.4gi", real(m.c), imag(m.c)))
	}
	sb.WriteString(title + "\n")
	sb.WriteString(white.Render(m.frame))

	status := fmt.Sprintf("center %.6g%+.6gi  height %.3g  iters %d  thresh %.2f  %.1fms",
		real(m.center), imag(m.center), m.viewHeight, m.maxIterations, m.threshold, m.renderMs)
	sb.WriteString(yellow.Render(status) + "\n")
	sb.WriteString(dim.Render("arrows pan  +/- zoom  [/] iters  t/T thresh  v variant  r reset  q quit"))

	return sb.String()
}

// Run starts the explorer in the alternate screen.
func Run(variant string, c complex128) error {
	p := tea.NewProgram(NewExplorer(variant, c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
