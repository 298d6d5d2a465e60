package vaultfmt

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
)

// CommandsExecutedEvent is emitted once per Execute call, after every
// command in the batch (including the trailing auto-pad) has applied.
type CommandsExecutedEvent struct {
	// Count is the number of commands that were appended to history by
	// this Execute call, including the trailing pad.
	Count int
}

// Engine owns a dataset and its history, replaying and appending
// commands as the single point of mutation. It is not safe for
// concurrent mutation; the internal mutex only turns a caller bug into
// a blocked goroutine instead of a data race.
type Engine struct {
	mu sync.Mutex

	dataset  *Dataset
	history  []string
	dirty    bool
	readOnly bool

	subsMu sync.Mutex
	subs   map[int]func(CommandsExecutedEvent)
	nextID int

	log       engineLogger
	padMinLen int
	padMaxLen int
}

// engineLogger is the subset of *logger.L's method set the engine
// needs. Depending on the concrete *logger.L rather than an interface
// would force every Engine, even one built without WithLogger, to have
// gone through logger.Initialise first; the discard logger below lets
// construction stay side-effect free.
type engineLogger interface {
	Debug(string)
	Debugf(string, ...interface{})
	Info(string)
	Infof(string, ...interface{})
	Error(string)
	Errorf(string, ...interface{})
}

type discardLogger struct{}

func (discardLogger) Debug(string) {}
func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Info(string) {}
func (discardLogger) Infof(string, ...interface{}) {}
func (discardLogger) Error(string) {}
func (discardLogger) Errorf(string, ...interface{}) {}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger attaches a tagged logger obtained from a process already
// initialised via logger.Initialise. Passing nil is equivalent to not
// calling the option at all.
func WithLogger(l *logger.L) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithReadOnly starts the engine in read-only mode, useful for
// snapshots and for histories undergoing merge-preprocessing.
func WithReadOnly(readOnly bool) EngineOption {
	return func(e *Engine) { e.readOnly = readOnly }
}

// WithPadding overrides the random-length range used to generate the
// trailing pad token's argument. Both bounds are inclusive; min must be
// at least 1 and max must be >= min.
func WithPadding(min, max int) EngineOption {
	return func(e *Engine) {
		if min >= 1 && max >= min {
			e.padMinLen = min
			e.padMaxLen = max
		}
	}
}

const (
	defaultPadMinLen = 8
	defaultPadMaxLen = 32
)

// NewEngine returns an Engine with an empty dataset and history.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		dataset:   NewDataset(),
		subs:      make(map[int]func(CommandsExecutedEvent)),
		log:       discardLogger{},
		padMinLen: defaultPadMinLen,
		padMaxLen: defaultPadMaxLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetDataset returns the current in-memory dataset.
func (e *Engine) GetDataset() *Dataset {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dataset
}

// GetHistory returns a copy of the accumulated history.
func (e *Engine) GetHistory() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// IsDirty reports whether an Execute call has completed successfully
// since construction, the last Clear, or the last Load. A failed
// Execute call does not set it, even when some of its commands ran.
func (e *Engine) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// SetReadOnly flips the hard read-only gate.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}

// Subscribe registers fn to be called after every successful Execute
// call; a rejected or failed call does not notify subscribers. The
// returned function removes the subscription: an explicit subscriber
// list rather than an embedded emitter base.
func (e *Engine) Subscribe(fn func(CommandsExecutedEvent)) (unsubscribe func()) {
	e.subsMu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.subsMu.Unlock()

	return func() {
		e.subsMu.Lock()
		delete(e.subs, id)
		e.subsMu.Unlock()
	}
}

func (e *Engine) notify(evt CommandsExecutedEvent) {
	e.subsMu.Lock()
	fns := make([]func(CommandsExecutedEvent), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subsMu.Unlock()
	for _, fn := range fns {
		fn(evt)
	}
}

// Clear resets the dataset and history to empty.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dataset = NewDataset()
	e.history = nil
	e.dirty = false
	e.log.Debug("engine cleared")
}

// Execute runs the single-command pipeline for each command string in
// order, then appends a trailing pad command unless the batch already
// ended with one. It rejects with ErrReadOnly if the engine is
// read-only.
func (e *Engine) Execute(commands ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		e.log.Error("execute rejected: engine is read-only")
		return newError(KindReadOnly, errors.New("engine is read-only"))
	}

	appended := 0
	lastShort := ""
	for _, line := range commands {
		short, err := e.applyOne(line)
		if err != nil {
			e.log.Errorf("execute failed on %q: %s", line, err)
			return err
		}
		lastShort = short
		appended++
	}

	if lastShort != "pad" {
		token, err := randomPadToken(e.padMinLen, e.padMaxLen)
		if err != nil {
			return newError(KindCommandExecutionError, errors.Wrap(err, "cannot generate pad token"))
		}
		padLine, err := BuildCommand("pad", token)
		if err != nil {
			return err
		}
		if _, err := e.applyOne(padLine); err != nil {
			return err
		}
		appended++
	}

	e.dirty = true
	e.log.Debugf("executed %d command(s), history length now %d", appended, len(e.history))
	e.notify(CommandsExecutedEvent{Count: appended})
	return nil
}

// applyOne runs the single-command pipeline for one line and returns
// the short key that ran, so Execute can decide whether a trailing pad
// is still needed. On success the original line (with its share
// prefix, if any) is appended to history; on failure the dataset
// mutations already made by the executor are not rolled back.
func (e *Engine) applyOne(line string) (string, error) {
	_, rest, _ := stripSharePrefix(line)
	short, _, err := Tokenize(rest)
	if err != nil {
		return "", err
	}
	if err := replayLine(e.dataset, line); err != nil {
		return "", err
	}
	e.history = append(e.history, line)
	return short, nil
}

const padAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomPadToken produces an opaque random token of a random length in
// [min, max], used as the pad command's argument.
func randomPadToken(min, max int) (string, error) {
	span := max - min + 1
	n, err := rand.Int(rand.Reader, big.NewInt(int64(span)))
	if err != nil {
		return "", err
	}
	length := min + int(n.Int64())

	buf := make([]byte, length)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(padAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = padAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
