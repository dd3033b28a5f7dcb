package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/flashcard-generator/internal/domain"
	"github.com/phrazzld/flashcard-generator/internal/events"
	"github.com/phrazzld/flashcard-generator/internal/redact"
	"github.com/phrazzld/flashcard-generator/internal/session"
	"github.com/phrazzld/flashcard-generator/internal/task"
)

// DefaultNoticeTimeout is how long a notice stays up unless dismissed.
const DefaultNoticeTimeout = 6 * time.Second

// Config configures a Coordinator.
type Config struct {
	// NoticeTimeout is the auto-dismiss delay. Zero or negative means
	// DefaultNoticeTimeout.
	NoticeTimeout time.Duration
}

// Result is the outcome of one submitted request.
type Result struct {
	Cards domain.CardSet
	Err   error
}

// Coordinator serializes all access to one session.State.
type Coordinator struct {
	mu      sync.Mutex
	state   session.State
	waiters map[uint64]chan Result
	timers  map[uint64]*time.Timer
	closed  bool

	requester     task.Requester
	emitter       *events.InMemoryEventEmitter
	runner        *task.Runner
	noticeTimeout time.Duration
	logger        *slog.Logger
}

// New creates a Coordinator that sends requests through requester and
// starts its task runner.
func New(requester task.Requester, cfg Config, logger *slog.Logger) (*Coordinator, error) {
	if requester == nil {
		return nil, task.ErrNilRequester
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.NoticeTimeout <= 0 {
		cfg.NoticeTimeout = DefaultNoticeTimeout
	}
	logger = logger.With("component", "coordinator")

	c := &Coordinator{
		state:         session.New(),
		waiters:       make(map[uint64]chan Result),
		timers:        make(map[uint64]*time.Timer),
		requester:     requester,
		emitter:       events.NewInMemoryEventEmitter(logger),
		runner:        task.NewRunner(task.DefaultRunnerConfig(), logger),
		noticeTimeout: cfg.NoticeTimeout,
		logger:        logger,
	}
	c.emitter.RegisterHandler(c)
	c.runner.SetErrorHandler(c.handleTaskError)
	c.runner.Start()

	return c, nil
}

// Submit records content and numCards, then starts a generation request
// without waiting for it. The returned channel receives exactly one Result.
//
// Blank content sets the empty-content notice and returns ErrEmptyContent.
// While a request is pending Submit returns ErrGenerationInFlight and leaves
// the state untouched.
func (c *Coordinator) Submit(content string, numCards int) (<-chan Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if c.state.Loading() {
		return nil, ErrGenerationInFlight
	}

	c.state, _ = session.Reduce(c.state, session.SetContent{Content: content})
	c.state, _ = session.Reduce(c.state, session.SetNumCards{N: numCards})

	next, cmd := session.Reduce(c.state, session.Generate{})
	c.state = next
	if cmd == nil {
		return nil, ErrGenerationInFlight
	}

	switch cmd.Kind {
	case session.ScheduleDismiss:
		c.scheduleDismissLocked(cmd.NoticeID)
		return nil, ErrEmptyContent

	case session.IssueRequest:
		ch := make(chan Result, 1)
		if err := c.startLocked(cmd); err != nil {
			c.logger.Error("failed to start generation task", "error", err, "token", cmd.Token)
			c.applyLocked(session.GenerationFailed{Token: cmd.Token})
			ch <- Result{Err: &GenerationError{Err: err}}
			close(ch)
			return ch, nil
		}
		c.waiters[cmd.Token] = ch
		return ch, nil
	}

	return nil, fmt.Errorf("unexpected command kind %d", cmd.Kind)
}

// Generate submits a request and waits for its result. If ctx ends first
// Generate returns ctx.Err(); the request itself keeps running and still
// updates the state when it completes.
func (c *Coordinator) Generate(ctx context.Context, content string, numCards int) (domain.CardSet, error) {
	ch, err := c.Submit(content, numCards)
	if err != nil {
		return nil, err
	}
	select {
	case res := <-ch:
		return res.Cards, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SetContent records the text being edited without generating.
func (c *Coordinator) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(session.SetContent{Content: content})
}

// SetNumCards records the selected card count, clamped to the valid range.
func (c *Coordinator) SetNumCards(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(session.SetNumCards{N: n})
}

// Toggle flips card i between question and answer. Unknown indices are
// ignored.
func (c *Coordinator) Toggle(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(session.Toggle{Index: i})
}

// Dismiss clears the current notice, if any.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.state.Notice()
	if !ok {
		return
	}
	if t, ok := c.timers[n.ID]; ok {
		t.Stop()
		delete(c.timers, n.ID)
	}
	c.applyLocked(session.DismissNotice{ID: n.ID})
}

// Snapshot returns the current state. The value is immutable.
func (c *Coordinator) Snapshot() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Export renders the current cards and hands them to saver.
func (c *Coordinator) Export(saver session.Saver) error {
	s := c.Snapshot()
	if !s.CanExport() {
		return ErrNothingToExport
	}
	return session.SaveExport(s.Cards(), saver)
}

// HandleEvent folds a generation outcome into the state and resolves the
// matching Submit channel. It implements events.EventHandler.
func (c *Coordinator) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Type {
	case events.TypeGenerationCompleted:
		var p events.GenerationCompleted
		if err := event.UnmarshalPayload(&p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if p.Token != c.state.PendingToken() {
			c.logger.DebugContext(ctx, "discarding superseded completion", "token", p.Token)
		}
		c.applyLocked(session.GenerationSucceeded{Token: p.Token, Cards: p.Cards})
		c.resolveLocked(p.Token, Result{Cards: p.Cards})

	case events.TypeGenerationFailed:
		var p events.GenerationFailed
		if err := event.UnmarshalPayload(&p); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		c.applyLocked(session.GenerationFailed{Token: p.Token})
		c.resolveLocked(p.Token, Result{Err: &GenerationError{Err: failureCause(p)}})

	default:
		c.logger.DebugContext(ctx, "ignoring event", "event_type", event.Type)
	}
	return nil
}

// Close stops auto-dismiss timers, rejects new requests and waits for the
// in-flight request, if any. When ctx ends first the request's context is
// cancelled.
func (c *Coordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	return c.runner.Stop(ctx)
}

func (c *Coordinator) startLocked(cmd *session.Command) error {
	t, err := task.NewGenerationTask(cmd.Token, cmd.Request, c.requester, c.emitter, c.logger)
	if err != nil {
		return err
	}
	return c.runner.Submit(t)
}

// handleTaskError runs on the worker goroutine after a task returned an
// error. Request failures were already reported by event; only a lost
// event still needs handling here.
func (c *Coordinator) handleTaskError(t task.Task, err error) {
	if !errors.Is(err, task.ErrEventNotDelivered) {
		c.logger.Debug("generation task finished with error", "task_id", t.ID(), "error", redact.Error(err))
		return
	}
	gt, ok := t.(*task.GenerationTask)
	if !ok {
		return
	}

	c.logger.Error("generation outcome lost, failing request", "task_id", t.ID(), "error", redact.Error(err))
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(session.GenerationFailed{Token: gt.Token()})
	c.resolveLocked(gt.Token(), Result{Err: &GenerationError{Err: err}})
}

func (c *Coordinator) applyLocked(a session.Action) {
	next, cmd := session.Reduce(c.state, a)
	c.state = next
	if cmd != nil && cmd.Kind == session.ScheduleDismiss {
		c.scheduleDismissLocked(cmd.NoticeID)
	}
}

func (c *Coordinator) resolveLocked(token uint64, res Result) {
	ch, ok := c.waiters[token]
	if !ok {
		return
	}
	delete(c.waiters, token)
	ch <- res
	close(ch)
}

func (c *Coordinator) scheduleDismissLocked(id uint64) {
	if c.closed {
		return
	}
	c.timers[id] = time.AfterFunc(c.noticeTimeout, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.timers, id)
		c.applyLocked(session.DismissNotice{ID: id})
	})
}
