package cli

import (
	"context"
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/zoomview"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

const (
	// headerRows is the number of terminal rows above the viewport.
	headerRows = 2

	// wheelZoomStep is the incremental scale factor per wheel notch.
	wheelZoomStep = 1.1

	frameInterval = 33 * time.Millisecond
)

// frameMsg drives the widget's cooperative clock.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// viewerModel is the bubbletea model wrapping a zoomview.View. Mouse
// events become pointer events, wheel notches become scale steps, and a
// steady tick drives tap confirmation and convergence animations.
type viewerModel struct {
	view     *zoomview.View
	title    string
	cols     int
	rows     int
	dragging bool
}

func newViewerModel(cfg Config, img image.Image) (viewerModel, error) {
	cols, rows := 80, 24
	v, err := zoomview.New(cols, rows*2, cfg.Widget.Options()...)
	if err != nil {
		return viewerModel{}, err
	}
	v.SetScaleType(zoomview.ParseScaleType(cfg.ScaleType))
	v.SetImage(img)
	return viewerModel{view: v, title: cfg.Image, cols: cols, rows: rows}, nil
}

func (m viewerModel) Init() tea.Cmd {
	return frameTick()
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.view.Tick(time.Time(msg))
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - headerRows - 1
		if m.rows < 1 {
			m.rows = 1
		}
		m.view.SetViewport(m.cols, m.rows*2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.view.Reset(true)
		case "t":
			m.view.SetScaleType(nextScaleType(m.view.ScaleType()))
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

// handleMouse maps terminal mouse input to the widget's pointer stream.
// One cell is one pixel wide and two pixels tall.
func (m viewerModel) handleMouse(msg tea.MouseMsg) viewerModel {
	pos := zoomview.Pt(float64(msg.X), float64((msg.Y-headerRows)*2))
	now := time.Now()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.Controller().ApplyScale(wheelZoomStep, pos)
		return m
	case tea.MouseButtonWheelDown:
		m.view.Controller().ApplyScale(1/wheelZoomStep, pos)
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.view.OnTouch(zoomview.PointerEvent{
				Phase:  zoomview.PhaseDown,
				Points: []zoomview.Point{pos},
				Time:   now,
			})
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.view.OnTouch(zoomview.PointerEvent{
				Phase:  zoomview.PhaseMove,
				Points: []zoomview.Point{pos},
				Time:   now,
			})
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.view.OnTouch(zoomview.PointerEvent{
				Phase: zoomview.PhaseUp,
				Time:  now,
			})
		}
	}
	return m
}

func (m viewerModel) View() string {
	dst := m.view.Viewport()
	m.view.Draw(dst)

	header := titleStyle.Render(m.title) + "\n" +
		helpStyle.Render("drag: pan  wheel: zoom  double-click: zoom in/out  r: reset  t: fit  q: quit")
	status := statusStyle.Render(fmt.Sprintf("%s  %.2fx",
		m.view.ScaleType(), m.view.Controller().ScaleFactor()))

	return header + "\n" + renderCells(dst) + status
}

func nextScaleType(st zoomview.ScaleType) zoomview.ScaleType {
	switch st {
	case zoomview.ScaleFitCenter:
		return zoomview.ScaleCenter
	case zoomview.ScaleCenter:
		return zoomview.ScaleCenterCrop
	case zoomview.ScaleCenterCrop:
		return zoomview.ScaleCenterInside
	case zoomview.ScaleCenterInside:
		return zoomview.ScaleFitXY
	default:
		return zoomview.ScaleFitCenter
	}
}

// runViewer loads the image and runs the interactive viewer until quit.
func runViewer(ctx context.Context, cfg Config) error {
	img, err := loadImage(cfg.Image)
	if err != nil {
		return err
	}
	m, err := newViewerModel(cfg, img)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
