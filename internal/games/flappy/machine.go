package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the state of the game machine.
type Phase int

const (
	PhaseIdle      Phase = iota // Title screen, nothing simulated
	PhaseCountdown              // Entities visible but frozen
	PhaseRunning                // Full simulation
	PhaseEnded                  // Run over, final score latched
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Machine drives runs through Idle -> Countdown -> Running -> Ended and back
// to Countdown on restart.
//
// The host owns the timers. Start, Restart and CountdownTick hand back the
// token to schedule next; Frame does the same while the run continues. A
// callback whose token has been cancelled is ignored.
type Machine struct {
	cfg        config.FlappyConfig
	seed       func() int64
	logger     *log.Logger
	phase      Phase
	session    *Session
	countdown  int
	finalScore int
	runs       int
	tokens     clock.Tokens
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeed makes every run use the same RNG seed. Without it each run is
// seeded from the wall clock.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.seed = func() int64 { return seed }
	}
}

// NewMachine creates a machine in the Idle phase.
func NewMachine(cfg config.FlappyConfig, opts ...Option) *Machine {
	m := &Machine{
		cfg:    cfg,
		seed:   func() int64 { return time.Now().UnixNano() },
		logger: log.New(io.Discard),
		phase:  PhaseIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start leaves the title screen. It is the same signal as Restart and is
// honored only in Idle or Ended; it returns the countdown token to schedule.
func (m *Machine) Start() (clock.Token, bool) {
	if m.phase != PhaseIdle && m.phase != PhaseEnded {
		return clock.Token{}, false
	}

	m.tokens.CancelAll()

	seed := m.seed()
	m.runs++
	m.session = NewSession(m.cfg, seed)
	m.countdown = m.cfg.Countdown.From
	m.finalScore = 0
	m.setPhase(PhaseCountdown)
	m.logger.Debug("run initialized", "run", m.runs, "seed", seed, "countdown", m.countdown)

	return m.tokens.Issue(clock.TaskCountdown), true
}

// Restart starts a new run after game over.
func (m *Machine) Restart() (clock.Token, bool) {
	return m.Start()
}

// Flap pushes the flyer up. Outside Running it does nothing.
func (m *Machine) Flap() {
	if m.phase != PhaseRunning {
		return
	}
	m.session.flyer.Flap()
}

// CountdownTick handles one countdown interval. While the countdown lasts it
// returns the same token to be scheduled again; on the last tick it cancels
// the countdown and returns the first frame token.
func (m *Machine) CountdownTick(tok clock.Token) (clock.Token, bool) {
	if tok.Task != clock.TaskCountdown || !m.tokens.Valid(tok) || m.phase != PhaseCountdown {
		return clock.Token{}, false
	}

	m.countdown--
	if m.countdown > 0 {
		return tok, true
	}

	m.tokens.Cancel(clock.TaskCountdown)
	m.setPhase(PhaseRunning)
	return m.tokens.Issue(clock.TaskFrame), true
}

// Frame runs one simulation step. It returns the token for the next frame
// unless the run ended during this step.
func (m *Machine) Frame(tok clock.Token) (clock.Token, bool) {
	if tok.Task != clock.TaskFrame || !m.tokens.Valid(tok) || m.phase != PhaseRunning {
		return clock.Token{}, false
	}

	if !m.session.Step() {
		return tok, true
	}

	m.tokens.Cancel(clock.TaskFrame)
	m.finalScore = m.session.Score()
	m.setPhase(PhaseEnded)
	m.logger.Info("game over",
		"run", m.runs,
		"score", m.finalScore,
		"frames", m.session.Frames(),
		"cause", m.session.Cause(),
	)
	return clock.Token{}, false
}

// Interval returns how long the host waits before delivering the next
// callback for tok. Frames run at the host's refresh rate, so only the
// countdown has a fixed interval; ok is false for frame tokens.
func (m *Machine) Interval(tok clock.Token) (time.Duration, bool) {
	if tok.Task == clock.TaskCountdown {
		return m.cfg.Countdown.Interval, true
	}
	return 0, false
}

func (m *Machine) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	m.logger.Debug("phase change", "from", m.phase, "to", p)
	m.phase = p
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Session returns the current run, or nil before the first start.
func (m *Machine) Session() *Session { return m.session }

// Countdown returns the remaining countdown value.
func (m *Machine) Countdown() int { return m.countdown }

// FinalScore returns the score latched when the last run ended.
func (m *Machine) FinalScore() int { return m.finalScore }

// Score returns the live score of the current run.
func (m *Machine) Score() int {
	if m.session == nil {
		return 0
	}
	return m.session.Score()
}

// Config returns the game configuration.
func (m *Machine) Config() config.FlappyConfig { return m.cfg }
