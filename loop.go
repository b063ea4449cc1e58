// Package spindle drives a native window's event and frame loop over a
// dynamically loaded SDL2. It pumps native events into a portable input
// model and ticks the application once per iteration. On Wayland
// sessions it also paces drawing against compositor frame callbacks.
//
// Everything happens on one OS thread: the goroutine that calls New
// must also call Run. Only Exit, Post and Retire are safe from
// elsewhere.
package spindle

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arvheim/spindle/input"
)

// Termination is returned from Game.Update to stop the loop cleanly.
// Run treats it as a normal exit and returns nil.
var Termination = errors.New("loop terminated by game")

// ErrAlreadyRunning is returned by Run when the loop was started twice.
var ErrAlreadyRunning = errors.New("run loop already started")

// Game is the application tick. Update runs every iteration; Draw runs
// after Update unless frame pacing suppresses it.
type Game interface {
	Update() error
	Draw()
}

// Disposable is anything with native resources that must be released on
// the loop thread. See Loop.Retire.
type Disposable interface {
	Dispose()
}

type loopState int

const (
	stateNotStarted loopState = iota
	stateRunning
	stateExiting
	stateDisposed
)

// Loop owns the window, the input state and the frame cycle. All fields
// are mutated on the loop thread only; cross-thread callers get exactly
// three doors in: Exit, Post and Retire.
type Loop struct {
	log       zerolog.Logger
	b         backend
	game      Game
	window    *Window
	pacer     *pacer
	joysticks *joystickRegistry
	handlers  Handlers

	keyboard input.Keyboard
	mouse    input.Mouse

	textEnabled bool
	active      bool

	exits   atomic.Int64
	started atomic.Bool
	state   loopState

	updates chan func()

	retireMu sync.Mutex
	retired  []Disposable
}

// New creates the native window and the loop around it. It locks the
// calling goroutine to its OS thread; Run must be called from the same
// goroutine.
func New(cfg Config, game Game) (*Loop, error) {
	if game == nil {
		return nil, errors.New("spindle: nil game")
	}
	cfg.applyEnv()
	log := cfg.Logger()
	runtime.LockOSThread()
	b, err := newSDLBackend(cfg, log)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return newLoop(cfg, game, b, log), nil
}

func newLoop(cfg Config, game Game, b backend, log zerolog.Logger) *Loop {
	l := &Loop{
		log:         log,
		b:           b,
		game:        game,
		textEnabled: cfg.Loop.TextInput,
		active:      true,
		updates:     make(chan func(), 1024),
	}
	l.window = newWindow(cfg.Window, b)
	l.joysticks = newJoystickRegistry(log.With().Str("component", "joystick").Logger(), b)
	l.pacer = newPacer(cfg.Loop.SynchronizedPresentation, b.requestFrame)
	b.setFrameDone(l.pacer.frameDone)
	if l.textEnabled {
		b.startTextInput()
	} else {
		b.stopTextInput()
	}
	return l
}

// Run shows the window and blocks in the frame cycle. It returns nil
// once Exit is called or a quit or window-close event arrives; an error
// from Update is propagated. Teardown always runs before Run returns.
func (l *Loop) Run() error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	l.state = stateRunning
	defer l.dispose()
	l.b.show()
	for {
		l.pump()
		suppress := l.pacer.pace()
		if err := l.game.Update(); err != nil {
			if errors.Is(err, Termination) {
				l.Exit()
			} else {
				l.state = stateExiting
				return fmt.Errorf("game update: %w", err)
			}
		}
		if !suppress {
			l.game.Draw()
		}
		l.drainUpdates()
		l.reclaim()
		if l.exits.Load() > 0 {
			l.state = stateExiting
			l.log.Debug().Msg("run loop exiting")
			return nil
		}
	}
}

// RunAsync exists to fail: the native layer requires event pumping on
// the thread that created the window, so a detached loop can never work
// here. Calling it is a configuration error, not a runtime condition.
func (l *Loop) RunAsync() {
	panic("spindle: asynchronous run loop is not supported on this platform; use Run")
}

// Exit asks the loop to stop after the current iteration. Safe to call
// from any goroutine, any number of times.
func (l *Loop) Exit() {
	l.exits.Add(1)
}

// Post queues fn to run on the loop thread at the end of the current
// iteration. Safe from any goroutine; blocks if the queue is full.
func (l *Loop) Post(fn func()) {
	l.updates <- fn
}

func (l *Loop) drainUpdates() {
	for {
		select {
		case fn := <-l.updates:
			fn()
		default:
			return
		}
	}
}

// Retire schedules d's disposal on the loop thread. Resources released
// by other goroutines go through here so the native free happens where
// the native layer expects it.
func (l *Loop) Retire(d Disposable) {
	l.retireMu.Lock()
	l.retired = append(l.retired, d)
	l.retireMu.Unlock()
}

func (l *Loop) reclaim() {
	l.retireMu.Lock()
	retired := l.retired
	l.retired = nil
	l.retireMu.Unlock()
	for _, d := range retired {
		d.Dispose()
	}
}

func (l *Loop) setActive(active bool) {
	if l.active == active {
		return
	}
	l.active = active
	if l.handlers.FocusChanged != nil {
		l.handlers.FocusChanged(active)
	}
}

// Active reports whether the window has input focus.
func (l *Loop) Active() bool { return l.active }

// Keyboard is the pressed-key set. Consistent only between iterations.
func (l *Loop) Keyboard() *input.Keyboard { return &l.keyboard }

// Mouse is the cursor, button and wheel snapshot. Consistent only
// between iterations.
func (l *Loop) Mouse() *input.Mouse { return &l.mouse }

// Window accesses the native window wrapper.
func (l *Loop) Window() *Window { return l.window }

// SetHandlers installs the application callbacks. Call before Run.
func (l *Loop) SetHandlers(h Handlers) { l.handlers = h }

// StartTextInput turns on text-input decoding and the native text event
// stream.
func (l *Loop) StartTextInput() {
	l.textEnabled = true
	l.b.startTextInput()
}

// StopTextInput turns off text-input decoding. Key events still flow.
func (l *Loop) StopTextInput() {
	l.textEnabled = false
	l.b.stopTextInput()
}

// Close releases everything without running the loop. After Run has
// returned the loop is already disposed and Close does nothing.
func (l *Loop) Close() {
	l.dispose()
}

// dispose tears the platform down in dependency order. Every step
// tolerates its resource never having been acquired, and a second call
// does nothing.
func (l *Loop) dispose() {
	if l.state == stateDisposed {
		return
	}
	l.state = stateDisposed
	l.b.destroyPendingFrame()
	l.b.closeBridge()
	l.b.destroyWindow()
	l.joysticks.closeAll()
	l.b.quitSubsystem()
	runtime.UnlockOSThread()
	l.log.Debug().Msg("run loop disposed")
}
