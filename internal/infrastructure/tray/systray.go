package tray

import (
	"context"
	"sync"

	"github.com/getlantern/systray"

	"github.com/bnema/deskclock/assets"
	"github.com/bnema/deskclock/internal/logging"
	"github.com/bnema/deskclock/internal/ui/input"
)

const tooltip = "Desktop clock"

// Menu runs the tray icon and turns menu clicks into commands.
type Menu struct {
	items []input.MenuItem

	once sync.Once
	out  chan input.Command
	done chan struct{}
	wg   sync.WaitGroup
}

// NewMenu creates the tray menu with the standard items.
func NewMenu() *Menu {
	return &Menu{
		items: input.TrayMenu(),
		out:   make(chan input.Command),
		done:  make(chan struct{}),
	}
}

// Start shows the tray icon and returns once the menu is built. The returned
// channel yields clicked commands and is closed when the tray exits. The tray
// is removed when ctx is cancelled.
func (m *Menu) Start(ctx context.Context) <-chan input.Command {
	log := logging.FromContext(ctx)
	ready := make(chan struct{})

	onReady := func() {
		systray.SetIcon(assets.IconPNG)
		systray.SetTooltip(tooltip)
		m.build(ctx)
		close(ready)
		log.Debug().Int("items", len(m.items)).Msg("tray menu ready")
	}

	go systray.Run(onReady, m.exit)
	<-ready

	go func() {
		select {
		case <-ctx.Done():
			systray.Quit()
		case <-m.done:
		}
	}()

	return m.out
}

func (m *Menu) build(ctx context.Context) {
	for _, item := range m.items {
		if item.Separator() {
			systray.AddSeparator()
			continue
		}
		entry := systray.AddMenuItem(item.Command.Label(), "")
		m.wg.Add(1)
		go func(cmd input.Command) {
			defer m.wg.Done()
			forward(ctx, entry.ClickedCh, cmd, m.out, m.done)
		}(item.Command)
	}
}

func (m *Menu) exit() {
	m.once.Do(func() {
		close(m.done)
		go func() {
			m.wg.Wait()
			close(m.out)
		}()
	})
}

// forward sends cmd on out for every click until ctx or done ends.
func forward(ctx context.Context, clicks <-chan struct{}, cmd input.Command, out chan<- input.Command, done <-chan struct{}) {
	for {
		select {
		case <-clicks:
		case <-ctx.Done():
			return
		case <-done:
			return
		}

		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}
