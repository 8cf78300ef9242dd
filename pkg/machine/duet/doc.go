/*
Package duet implements the eight-opcode "duet" register machine.

	snd X     send the value of X
	set X Y   X = Y
	add X Y   X = X + Y
	mul X Y   X = X * Y
	mod X Y   X = X mod Y
	rcv X     receive into register X
	jgz X Y   jump by Y if X > 0

A single Machine models snd/rcv with one slot: snd records the last value
sent and rcv copies it into its register once anything has been sent. A Pair
runs two actors over the same program, each seeded with its id in register
p, where snd appends to the actor's outbound queue and rcv blocks until the
peer's queue has an unread value.
*/
package duet
