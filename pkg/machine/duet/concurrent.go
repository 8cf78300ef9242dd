package duet

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// checkEvery is how many steps an actor runs between context checks.
const checkEvery = 1 << 12

// exchange carries values between two concurrently running actors. Queues
// are append-only and read positionally, exactly as in the cooperative Pair.
type exchange struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queues  [2][]int64
	cursors [2]int
	waiting [2]bool
	halted  [2]bool
	stopped bool
}

func newExchange() *exchange {
	x := &exchange{}
	x.cond = sync.NewCond(&x.mu)
	return x
}

func (x *exchange) send(id int, v int64) {
	x.mu.Lock()
	x.queues[id] = append(x.queues[id], v)
	x.cond.Broadcast()
	x.mu.Unlock()
}

// receive blocks until the peer has an unread value. It returns false when
// the pair is deadlocked (the peer has halted, or is itself waiting with
// nothing to read) or when the run was stopped.
func (x *exchange) receive(id int) (int64, bool) {
	peer := 1 - id
	x.mu.Lock()
	defer x.mu.Unlock()
	for x.cursors[id] >= len(x.queues[peer]) {
		if x.stopped {
			return 0, false
		}
		if x.halted[peer] || (x.waiting[peer] && x.cursors[peer] >= len(x.queues[id])) {
			x.stopped = true
			x.cond.Broadcast()
			return 0, false
		}
		x.waiting[id] = true
		x.cond.Wait()
		x.waiting[id] = false
	}
	v := x.queues[peer][x.cursors[id]]
	x.cursors[id]++
	return v, true
}

func (x *exchange) halt(id int) {
	x.mu.Lock()
	x.halted[id] = true
	x.cond.Broadcast()
	x.mu.Unlock()
}

func (x *exchange) stop() {
	x.mu.Lock()
	x.stopped = true
	x.cond.Broadcast()
	x.mu.Unlock()
}

func (x *exchange) sent() [2]int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return [2]int{len(x.queues[0]), len(x.queues[1])}
}

// RunConcurrent runs the pair with one goroutine per actor. A rcv blocks
// only its own actor, delivery is FIFO per sender, and the run ends when
// both actors are halted or waiting on each other with nothing in flight.
// The result matches RunPair; ctx cancellation aborts the run.
func RunConcurrent(ctx context.Context, prog []Instruction) (Result, error) {
	x := newExchange()
	g, gctx := errgroup.WithContext(ctx)
	release := context.AfterFunc(gctx, x.stop)
	defer release()

	for id := range 2 {
		g.Go(func() error {
			return runActor(gctx, prog, id, x)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Sent: x.sent()}, nil
}

func runActor(ctx context.Context, prog []Instruction, id int, x *exchange) error {
	m := New(prog)
	m.bank.Set('p', int64(id))
	defer x.halt(id)

	send := func(v int64) { x.send(id, v) }
	receive := func() (int64, bool) { return x.receive(id) }
	for steps := 0; ; steps++ {
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		switch m.transfer(send, receive) {
		case Halted:
			return nil
		case Blocked:
			return ctx.Err()
		}
	}
}
