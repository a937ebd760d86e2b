package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ProgressColorFunc is a function that returns a color based on percentage.
type ProgressColorFunc func(percent float64) lipgloss.Color

// ProgressColorProgress returns colors for progress bars, where higher
// values are better: 0-50% secondary (blue), 50-80% warning (yellow),
// 80%+ success (green).
func ProgressColorProgress(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorSuccess
	case percent >= 50:
		return ColorWarning
	default:
		return ColorSecondary
	}
}

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width       int               // Width of the bar in characters
	Brackets    bool              // Whether to wrap bar in [ ]
	ColorFunc   ProgressColorFunc // Function to determine bar color
	ShowPercent bool              // Whether to append percentage
}

// ProgressBarConfig returns a config for progress-style bars.
func ProgressBarConfig(width int) BarConfig {
	return BarConfig{
		Width:     width,
		Brackets:  true,
		ColorFunc: ProgressColorProgress,
	}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildBarString builds the raw bar string (without styling) from
// filled/empty counts. If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	capacity := filledCount + emptyCount
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}

	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}

	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// CalculateBarCounts returns the number of filled and empty characters for
// a bar. Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// CalculateBarCountsNormalized returns counts for a normalized (0-1)
// percentage.
func CalculateBarCountsNormalized(percent float64, width int) (filled, empty int) {
	filled = int(percent * float64(width))
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// RenderBar renders a progress bar with the given configuration.
// Percent should be 0-100.
func RenderBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, config.Width)
	bar := BuildBarString(filled, empty, config.Brackets)

	if config.ColorFunc != nil {
		color := config.ColorFunc(percent)
		style := lipgloss.NewStyle().Foreground(color)
		bar = style.Render(bar)
	}

	return bar
}

// InlineProgress displays an animated progress bar for CLI use. It uses a
// goroutine for animation, like the Spinner, and shows real progress fed
// through Update.
type InlineProgress struct {
	mu           sync.Mutex
	label        string
	percent      float64 // 0-1
	note         string
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	output       io.Writer
	running      bool
	lastRendered string
	width        int
}

// NewInlineProgress creates a new inline progress display.
func NewInlineProgress(label string, output io.Writer) *InlineProgress {
	return &InlineProgress{
		label:  label,
		output: output,
		width:  30, // Default progress bar width
	}
}

// SetWidth sets the progress bar width.
func (p *InlineProgress) SetWidth(w int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = w
}

// Start begins the progress animation.
func (p *InlineProgress) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.startTime = time.Now()
	p.stopChan = make(chan struct{})
	p.doneChan = make(chan struct{})
	p.mu.Unlock()

	p.render()

	go p.animate()
}

// Update sets the progress (0-1) and an optional note shown after the bar.
func (p *InlineProgress) Update(percent float64, note string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.percent = percent
	p.note = note
}

// Stop halts the progress animation.
func (p *InlineProgress) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	<-p.doneChan
}

// Success stops and renders success state.
func (p *InlineProgress) Success() {
	p.Stop()
	p.renderFinal(true)
}

// Fail stops and renders failure state.
func (p *InlineProgress) Fail() {
	p.Stop()
	p.renderFinal(false)
}

func (p *InlineProgress) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	defer close(p.doneChan)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.render()
		}
	}
}

func (p *InlineProgress) render() {
	p.mu.Lock()
	defer p.mu.Unlock()

	frame := spinnerFrames[int(time.Since(p.startTime).Milliseconds()/100)%len(spinnerFrames)]
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	bar := p.renderBarLocked()

	pctStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	pctStr := pctStyle.Render(fmt.Sprintf("%3.0f%%", p.percent*100))

	var note string
	if p.note != "" {
		noteStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		note = " " + noteStyle.Render(p.note)
	}

	line := fmt.Sprintf("\r%s %s %s %s%s",
		symbolStyle.Render(frame),
		p.label,
		bar,
		pctStr,
		note,
	)

	if p.lastRendered != "" {
		clearLen := len([]rune(StripANSI(p.lastRendered)))
		fmt.Fprintf(p.output, "\r%s\r", strings.Repeat(" ", clearLen))
	}

	fmt.Fprint(p.output, line)
	p.lastRendered = line
}

func (p *InlineProgress) renderBarLocked() string {
	filled, empty := CalculateBarCountsNormalized(p.percent, p.width)

	barColor := ProgressColorProgress(p.percent * 100)

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	filledBar := filledStyle.Render(strings.Repeat(string(BarFilled), filled))
	emptyBar := emptyStyle.Render(strings.Repeat(string(BarEmpty), empty))

	return "[" + filledBar + emptyBar + "]"
}

func (p *InlineProgress) renderFinal(success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastRendered != "" {
		clearLen := len([]rune(StripANSI(p.lastRendered)))
		fmt.Fprintf(p.output, "\r%s\r", strings.Repeat(" ", clearLen))
	}

	var symbol string
	var style lipgloss.Style

	if success {
		symbol = SymbolComplete
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	} else {
		symbol = SymbolFail
		style = lipgloss.NewStyle().Foreground(ColorError)
	}

	elapsed := time.Since(p.startTime)
	timing := formatDuration(elapsed)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(p.output, "%s %s %s\n",
		style.Render(symbol),
		p.label,
		timingStyle.Render(timing),
	)
}
