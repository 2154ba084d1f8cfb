package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/kk-code-lab/dpane/internal/config"
	"github.com/kk-code-lab/dpane/internal/pane"
	"github.com/kk-code-lab/dpane/internal/watcher"
)

// inputMode selects how key events are interpreted.
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeMkdir
	modeRename
)

// Renderer is what the loop needs from the UI layer. The concrete renderer
// lives in internal/ui/render; the interface avoids an import cycle.
type Renderer interface {
	Render(a *App)
}

// Session owns the terminal screen and runs the interactive loop around an
// App.
type Session struct {
	app      *App
	screen   tcell.Screen
	renderer Renderer
	watch    *watcher.Watcher
	log      zerolog.Logger

	mode  inputMode
	input string
}

// NewSession initializes the terminal and the change watcher.
func NewSession(cfg *config.Config, a *App, renderer func(tcell.Screen) Renderer, log zerolog.Logger) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Session{
		app:      a,
		screen:   screen,
		renderer: renderer(screen),
		log:      log,
	}

	if cfg.Watch {
		w, err := watcher.New(log)
		if err != nil {
			log.Warn().Err(err).Msg("change watching unavailable")
		} else {
			s.watch = w
			// The loop goroutine owns all state; the watcher only posts a
			// wakeup event.
			w.OnChange(func(dir string) {
				_ = screen.PostEvent(tcell.NewEventInterrupt(dir))
			})
			w.Start()
			s.updateWatches()
		}
	}

	return s, nil
}

// Run drives the event loop until the user quits.
func (s *Session) Run() error {
	defer s.Close()

	for {
		s.renderer.Render(s.app)

		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			if err := s.app.RefreshBoth(); err != nil {
				s.setStatus(err.Error())
			}
		case *tcell.EventKey:
			quit := false
			if s.mode == modeNormal {
				quit = s.handleNormalKey(ev)
			} else {
				s.handleInputKey(ev)
			}
			if quit {
				return s.app.SaveConfig()
			}
			s.updateWatches()
		}
	}
}

// Close restores the terminal and stops the watcher.
func (s *Session) Close() {
	if s.watch != nil {
		if err := s.watch.Stop(); err != nil {
			s.log.Debug().Err(err).Msg("watcher stop failed")
		}
		s.watch = nil
	}
	s.screen.Fini()
}

func (s *Session) updateWatches() {
	if s.watch == nil {
		return
	}
	s.watch.Update(s.app.Left.CurrentPath, s.app.Right.CurrentPath)
}

func (s *Session) setStatus(msg string) {
	s.app.StatusMsg = msg
}

// handleNormalKey dispatches one key press and reports whether to quit.
func (s *Session) handleNormalKey(ev *tcell.EventKey) bool {
	p := s.app.ActivePane()
	s.app.StatusMsg = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		s.app.SwitchPane()
		return false
	case tcell.KeyUp:
		if ev.Modifiers()&tcell.ModShift != 0 {
			p.ExtendSelection(-1)
		} else {
			p.MoveCursor(-1)
		}
		return false
	case tcell.KeyDown:
		if ev.Modifiers()&tcell.ModShift != 0 {
			p.ExtendSelection(1)
		} else {
			p.MoveCursor(1)
		}
		return false
	case tcell.KeyHome:
		p.MoveCursor(-len(p.Entries))
		return false
	case tcell.KeyEnd:
		p.MoveCursor(len(p.Entries))
		return false
	case tcell.KeyPgUp:
		p.MoveCursor(-pageStep(s.screen))
		return false
	case tcell.KeyPgDn:
		p.MoveCursor(pageStep(s.screen))
		return false
	case tcell.KeyEnter:
		s.report(p.EnterSelected())
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.report(p.NavigateBack())
		return false
	case tcell.KeyF5:
		s.report(s.app.CopySelected())
		return false
	case tcell.KeyF6:
		s.report(s.app.MoveSelected())
		return false
	case tcell.KeyF7:
		s.mode = modeMkdir
		s.input = ""
		return false
	case tcell.KeyF8, tcell.KeyDelete:
		s.report(s.app.DeleteSelected())
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'j':
		p.MoveCursor(1)
	case 'k':
		p.MoveCursor(-1)
	case 'h':
		s.report(p.NavigateBack())
	case 'l':
		s.report(p.NavigateForward())
	case 'n':
		p.ToggleSort(pane.SortByName)
	case 's':
		p.ToggleSort(pane.SortBySize)
	case 'd':
		p.ToggleSort(pane.SortByDate)
	case '.':
		s.app.ToggleHidden()
	case '/':
		s.mode = modeFilter
		s.input = p.Filter
	case 'c':
		s.mode = modeRename
		s.input = ""
	case 'r':
		s.report(s.app.RefreshBoth())
	case 'b':
		if p.Cursor >= len(p.Entries) {
			break
		}
		entry := p.Entries[p.Cursor]
		if entry.IsDir && !entry.IsParent() {
			if s.app.Marks.Add(entry.Name, entry.FullPath, "") {
				s.report(s.app.Marks.Save())
			}
		}
	}
	return false
}

// handleInputKey edits the pending filter or prompt text.
func (s *Session) handleInputKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if s.mode == modeFilter {
			s.app.ActivePane().ApplyFilter("")
		}
		s.mode = modeNormal
		return
	case tcell.KeyEnter:
		s.commitInput()
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(s.input) > 0 {
			runes := []rune(s.input)
			s.input = string(runes[:len(runes)-1])
		}
	default:
		if r := ev.Rune(); r != 0 {
			s.input += string(r)
		}
	}
	if s.mode == modeFilter {
		// Filtering is live while typing.
		s.app.ActivePane().ApplyFilter(s.input)
	}
}

func (s *Session) commitInput() {
	mode, text := s.mode, s.input
	s.mode = modeNormal
	s.input = ""

	switch mode {
	case modeMkdir:
		if text != "" {
			s.report(s.app.MakeDir(text))
		}
	case modeRename:
		if text != "" {
			s.report(s.app.RenameCurrent(text))
		}
	}
}

// report surfaces an operation error on the status line instead of crashing
// the session.
func (s *Session) report(err error) {
	if err == nil {
		return
	}
	s.log.Error().Err(err).Msg("operation failed")
	s.setStatus(err.Error())
}

func pageStep(screen tcell.Screen) int {
	_, h := screen.Size()
	step := h - 3
	if step < 1 {
		step = 1
	}
	return step
}
