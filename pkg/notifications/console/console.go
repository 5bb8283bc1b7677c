// Package console renders notifications as toasts on a terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/wintryx/progressmaker/pkg/notifications"
)

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
	info    = lipgloss.Color("#60A5FA")
	dim     = lipgloss.Color("#6B7280")
)

var (
	palette = map[notifications.Type]lipgloss.Color{
		notifications.TypeSuccess: success,
		notifications.TypeError:   danger,
		notifications.TypeWarning: warning,
		notifications.TypeInfo:    info,
	}

	icons = map[notifications.Type]string{
		notifications.TypeSuccess: "✔",
		notifications.TypeError:   "✖",
		notifications.TypeWarning: "!",
		notifications.TypeInfo:    "i",
	}
)

// Presenter prints each notification as a bordered toast. When a toast asks
// to clear existing ones and the previous toast is still on screen, it is
// erased first.
type Presenter struct {
	mu        sync.Mutex
	out       io.Writer
	renderer  *lipgloss.Renderer
	width     int
	erase     bool
	lastLines int
}

type Option func(*Presenter)

// WithWidth sets the toast width in cells.
func WithWidth(width int) Option {
	return func(p *Presenter) {
		if width > 0 {
			p.width = width
		}
	}
}

// WithErase controls whether the previous toast is erased with ANSI cursor
// movement. It defaults to true when out is a terminal.
func WithErase(erase bool) Option {
	return func(p *Presenter) {
		p.erase = erase
	}
}

func New(out io.Writer, opts ...Option) *Presenter {
	if out == nil {
		out = os.Stdout
	}
	p := &Presenter{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		width:    48,
		erase:    isTerminal(out),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Presenter) Present(_ context.Context, opts notifications.Options) error {
	toast := p.Render(opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	if opts.ClearExisting && p.erase && p.lastLines > 0 {
		// Move up over the previous toast and clear to the end of the screen.
		if _, err := fmt.Fprintf(p.out, "\x1b[%dA\x1b[J", p.lastLines); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(p.out, toast); err != nil {
		return err
	}
	p.lastLines = lipgloss.Height(toast)
	return nil
}

// Render returns the styled toast without printing it.
func (p *Presenter) Render(opts notifications.Options) string {
	color, ok := palette[opts.Type]
	if !ok {
		color = info
	}
	icon := icons[opts.Type]
	if icon == "" {
		icon = icons[notifications.TypeInfo]
	}

	box := p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(p.width)
	head := p.renderer.NewStyle().Bold(true).Foreground(color)
	action := p.renderer.NewStyle().Foreground(dim)

	var b strings.Builder
	b.WriteString(head.Render(icon + " " + strings.ToUpper(opts.Type.String())))
	b.WriteString("\n")
	b.WriteString(opts.Message)
	if opts.ActionLabel != "" {
		b.WriteString("\n")
		b.WriteString(action.Render(fmt.Sprintf("[%s] · %s", opts.ActionLabel, opts.Duration)))
	}
	return box.Render(b.String())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
