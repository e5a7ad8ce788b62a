// Package io provides terminal channel implementations for the synvm emulator.
// The virtual machine performs all host I/O one character at a time through
// the Terminal interface; Tape adapts ordinary byte streams to it.
package io

// Terminal defines the interface for the machine's character channel.
// The in opcode blocks on ReadChar and the out opcode emits via WriteChar.
type Terminal interface {
	// ReadChar returns the next input character.
	ReadChar() (byte, error)
	// WriteChar emits a single output character.
	WriteChar(value byte) error
}
