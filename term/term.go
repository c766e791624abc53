package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/screendown"
)

// eventQueueSize bounds the buffer between tcell's poller and the render
// loop.
const eventQueueSize = 64

// Options holds optional parameters for Run.
type Options struct {
	// Debug enables debug logging to stderr.
	Debug bool
	// Sink, if set, receives the view's events.
	Sink screendown.EventSink
}

// host owns the tcell screen and implements screendown.Invalidator by
// posting an interrupt event, which wakes the render loop from any goroutine.
type host struct {
	screen tcell.Screen
}

func (h *host) Invalidate() error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run renders the widget in the terminal until ctx is cancelled or the user
// quits with Escape, q or Ctrl-C. A mouse press, space or enter taps the
// widget.
func Run(ctx context.Context, cfg *screendown.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return loop(ctx, screen, cfg, opts)
}

func loop(ctx context.Context, screen tcell.Screen, cfg *screendown.Config, opts Options) error {
	h := &host{screen: screen}
	view := screendown.NewView(cfg, h)
	view.SetDebugMode(opts.Debug)
	view.SetEventSink(opts.Sink)
	defer view.Close()

	surface := NewSurface(screen.Size())
	render := func() {
		surface.Reset()
		view.Render(surface)
		surface.Flush(screen)
	}

	events := make(chan tcell.Event, eventQueueSize)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	render()
	var buttonDown bool
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				surface.Resize(screen.Size())
				screen.Sync()
				render()
			case *tcell.EventInterrupt:
				render()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyEnter,
					ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					view.HandleTap()
					render()
				}
			case *tcell.EventMouse:
				down := ev.Buttons()&tcell.Button1 != 0
				if down && !buttonDown {
					view.HandleTap()
					render()
				}
				buttonDown = down
			}
		}
	}
}
