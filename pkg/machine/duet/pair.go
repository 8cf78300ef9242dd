package duet

// Result summarizes a dual-actor run.
type Result struct {
	// Sent is the number of values each actor sent.
	Sent [2]int
	// Rounds counts scheduler rounds, including the final idle one. It is
	// zero for RunConcurrent.
	Rounds int
}

// Pair schedules two actors cooperatively: actor 0 runs until it blocks or
// halts, then actor 1 does the same, and so on.
type Pair struct {
	actors [2]*Actor
	rounds int
}

// NewPair creates actors 0 and 1 over the same program.
func NewPair(prog []Instruction) *Pair {
	return &Pair{actors: [2]*Actor{NewActor(prog, 0), NewActor(prog, 1)}}
}

// Actor returns actor 0 or 1.
func (p *Pair) Actor(id int) *Actor { return p.actors[id] }

// Round gives each actor one turn and reports how many values each sent.
// Actor 1 already sees what actor 0 sent during the same round.
func (p *Pair) Round() (sent0, sent1 int) {
	p.rounds++
	a, b := p.actors[0], p.actors[1]
	sent0 = a.RunUntilBlock(b.Outbox())
	sent1 = b.RunUntilBlock(a.Outbox())
	return sent0, sent1
}

// Run schedules rounds until one passes in which neither actor sends
// anything, which means both are halted or waiting on each other.
func (p *Pair) Run() Result {
	for {
		sent0, sent1 := p.Round()
		if sent0 == 0 && sent1 == 0 {
			return p.result()
		}
	}
}

func (p *Pair) result() Result {
	return Result{
		Sent:   [2]int{p.actors[0].Sent(), p.actors[1].Sent()},
		Rounds: p.rounds,
	}
}

// RunPair runs prog as a pair until deadlock or halt.
func RunPair(prog []Instruction) Result {
	return NewPair(prog).Run()
}
