package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"skiphire/internal/domain/entities"
	"skiphire/internal/usecase/interfaces"
)

var ErrFetchControllerClosed = errors.New("fetch controller closed")

// SkipFetchController owns the skip list load for one booking session.
//
// Only the latest load is ever observable: each Load bumps a generation
// counter and cancels the previous request context, and a completion is
// applied only while its generation is still the latest one.
type SkipFetchController struct {
	source interfaces.ISkipSource
	now    func() time.Time

	mu       sync.Mutex
	gen      uint64
	current  *loadAttempt
	result   entities.FetchResult
	closed   bool
	onChange func(entities.FetchResult)
}

type loadAttempt struct {
	gen    uint64
	cancel context.CancelFunc
	// closed once the attempt settles, is superseded or the controller closes
	done chan struct{}
}

func NewSkipFetchController(source interfaces.ISkipSource) *SkipFetchController {
	return &SkipFetchController{
		source: source,
		now:    func() time.Time { return time.Now().UTC() },
		result: entities.NewPendingResult(0, "", "", time.Time{}),
	}
}

// OnChange registers fn to run, under the controller lock, every time the
// visible result is replaced: the pending result of a new load and the
// settled result of the latest one. fn must not call back into the controller.
func (c *SkipFetchController) OnChange(fn func(entities.FetchResult)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Load starts a single GET for (postcode, area) and returns the new pending
// result. An outstanding load is cancelled and its outcome discarded.
func (c *SkipFetchController) Load(postcode, area string) (entities.FetchResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return entities.FetchResult{}, ErrFetchControllerClosed
	}

	if prev := c.current; prev != nil {
		log.Printf("[skips][fetch] superseding load gen=%d", prev.gen)
		prev.cancel()
		close(prev.done)
	}

	c.gen++
	ctx, cancel := context.WithCancel(context.Background())
	attempt := &loadAttempt{gen: c.gen, cancel: cancel, done: make(chan struct{})}
	c.current = attempt
	c.result = entities.NewPendingResult(attempt.gen, postcode, area, c.now())
	pending := c.result
	if c.onChange != nil {
		c.onChange(pending)
	}
	c.mu.Unlock()

	log.Printf("[skips][fetch] load start gen=%d postcode=%q area=%q", attempt.gen, postcode, area)
	go c.run(ctx, attempt, postcode, area)

	return pending, nil
}

func (c *SkipFetchController) run(ctx context.Context, attempt *loadAttempt, postcode, area string) {
	skips, err := c.source.ListByLocation(ctx, postcode, area)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer attempt.cancel()

	if c.current != attempt {
		log.Printf("[skips][fetch] discarding superseded load gen=%d err=%v", attempt.gen, err)
		return
	}

	if err != nil {
		log.Printf("[skips][fetch] load failed gen=%d postcode=%q area=%q err=%v", attempt.gen, postcode, area, err)
		c.result = c.result.Fail(c.now())
	} else {
		log.Printf("[skips][fetch] load success gen=%d skips=%d", attempt.gen, len(skips))
		c.result = c.result.Succeed(skips, c.now())
	}

	c.current = nil
	close(attempt.done)

	if c.onChange != nil {
		c.onChange(c.result)
	}
}

// Result returns the currently visible result.
func (c *SkipFetchController) Result() entities.FetchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Await blocks until the latest load settles. If that load is superseded
// while waiting, Await follows the newer one.
func (c *SkipFetchController) Await(ctx context.Context) (entities.FetchResult, error) {
	for {
		c.mu.Lock()
		res := c.result
		attempt := c.current
		closed := c.closed
		c.mu.Unlock()

		if attempt == nil {
			if closed && res.IsPending() {
				return res, ErrFetchControllerClosed
			}
			return res, nil
		}

		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case <-attempt.done:
		}
	}
}

// Close tears the controller down: the outstanding load is cancelled and
// nothing it returns is applied. Further loads fail.
func (c *SkipFetchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if prev := c.current; prev != nil {
		log.Printf("[skips][fetch] teardown cancelling load gen=%d", prev.gen)
		prev.cancel()
		close(prev.done)
		c.current = nil
	}
}
