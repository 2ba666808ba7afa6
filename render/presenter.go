package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mandel/constant"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// Status bar colors
var (
	RgbStatusBackground = RGB{28, 28, 36}
	RgbStatusForeground = RGB{200, 200, 210}
)

// StatusFunc formats the status line for the state being presented
type StatusFunc func(st viewport.State) string

// ScreenPresenter draws frame buffers onto a tcell screen, two pixels per cell
type ScreenPresenter struct {
	screen tcell.Screen
	status StatusFunc
	redraw bool
}

// NewScreenPresenter creates a presenter; status may be nil to leave the bar blank
func NewScreenPresenter(screen tcell.Screen, status StatusFunc) *ScreenPresenter {
	return &ScreenPresenter{
		screen: screen,
		status: status,
		redraw: true,
	}
}

// Size returns the pixel area available above the status bar
func (p *ScreenPresenter) Size() (width, height int) {
	cols, rows := p.screen.Size()
	rows -= constant.StatusBarRows
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows * constant.PixelsPerCell
}

// Resize resynchronizes the terminal after a size change and requests a full redraw
func (p *ScreenPresenter) Resize() {
	p.screen.Sync()
	p.redraw = true
}

// NeedsRedraw reports whether the next frame must be drawn even if the state is unchanged
func (p *ScreenPresenter) NeedsRedraw() bool {
	return p.redraw
}

// Present draws fb clipped to the screen, then the status bar, then shows the result
func (p *ScreenPresenter) Present(fb *FrameBuffer, st viewport.State) {
	p.screen.Clear()

	cols, rows := p.screen.Size()
	cellRows := rows - constant.StatusBarRows

	if fb != nil {
		width := min(cols, fb.Width)
		height := min(cellRows, (fb.Height+constant.PixelsPerCell-1)/constant.PixelsPerCell)

		for cy := 0; cy < height; cy++ {
			upperY := cy * constant.PixelsPerCell
			lowerY := upperY + 1
			for x := 0; x < width; x++ {
				upper := fb.At(x, upperY)
				lower := RGBBlack
				if lowerY < fb.Height {
					lower = fb.At(x, lowerY)
				}
				style := tcell.StyleDefault.Foreground(upper.TCell()).Background(lower.TCell())
				p.screen.SetContent(x, cy, halfBlock, nil, style)
			}
		}
	}

	if rows > 0 {
		p.drawStatus(cols, rows-1, st)
	}

	p.screen.Show()
	p.redraw = false
}

// drawStatus fills row y with the status text, truncated to the screen width
func (p *ScreenPresenter) drawStatus(cols, y int, st viewport.State) {
	style := tcell.StyleDefault.
		Background(RgbStatusBackground.TCell()).
		Foreground(RgbStatusForeground.TCell())

	var text []rune
	if p.status != nil {
		text = []rune(p.status(st))
	}

	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		p.screen.SetContent(x, y, ch, nil, style)
	}
}
