/*
Package machine holds the execution model shared by the register-machine
dialects: operands, the register bank and instruction-pointer arithmetic.

Registers are named by a single lowercase letter. Every register exists
implicitly and reads as zero until written; an unknown register is never a
fault. A program halts when its instruction pointer leaves the program,
whether past the end or before the start.
*/
package machine
