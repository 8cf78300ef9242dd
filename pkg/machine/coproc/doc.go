// Package coproc implements the four-opcode coprocessor register machine
// (set, sub, mul, jnz). It has no I/O; callers inspect registers and the
// per-opcode execution counters after the program halts.
package coproc
