package duet_test

import (
	"context"
	"fmt"

	"github.com/aretw0/duet"
)

func Example() {
	eng, err := duet.New()
	if err != nil {
		fmt.Println(err)
		return
	}

	program := `set a 1
add a 2
mul a a
mod a 5
snd a
set a 0
rcv a
jgz a -1
set a 1
jgz a -2`

	ans, err := eng.SolveInput(context.Background(), 18, program)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ans.Part1)
	// Output: 4
}
