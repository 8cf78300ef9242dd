package duet

// Actor is one side of a Pair: a machine seeded with its id in register p,
// an append-only outbound queue and a read cursor into its peer's queue.
type Actor struct {
	id     int64
	m      *Machine
	outbox []int64
	cursor int
	status Status
}

// NewActor creates an actor running prog with p = id.
func NewActor(prog []Instruction, id int64) *Actor {
	m := New(prog)
	m.bank.Set('p', id)
	return &Actor{id: id, m: m}
}

// ID returns the seed the actor was created with.
func (a *Actor) ID() int64 { return a.id }

// Machine exposes the underlying machine.
func (a *Actor) Machine() *Machine { return a.m }

// Outbox returns every value the actor has sent, in send order.
func (a *Actor) Outbox() []int64 { return a.outbox }

// Sent returns the number of values the actor has sent.
func (a *Actor) Sent() int { return len(a.outbox) }

// Status reports why the last turn ended.
func (a *Actor) Status() Status { return a.status }

// RunUntilBlock executes until the program halts or a rcv finds no unread
// value in peer, and returns how many values were sent during the turn.
func (a *Actor) RunUntilBlock(peer []int64) int {
	before := len(a.outbox)
	send := func(v int64) { a.outbox = append(a.outbox, v) }
	receive := func() (int64, bool) {
		if a.cursor >= len(peer) {
			return 0, false
		}
		v := peer[a.cursor]
		a.cursor++
		return v, true
	}
	for {
		a.status = a.m.transfer(send, receive)
		if a.status != Running {
			return len(a.outbox) - before
		}
	}
}
