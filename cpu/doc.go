// Package cpu implements the processor and assembler for the synvm system.
//
// The machine is a 15-bit word architecture: all arithmetic wraps modulo
// 32768. It has eight general-purpose registers (r0-r7), a 32768-word
// address space, a call stack, and a character terminal channel. Operand
// fields encode either a literal value (0 through 32767) or a register
// (32768 through 32775); anything higher faults.
//
// The assembler provides an assembly language for the instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
