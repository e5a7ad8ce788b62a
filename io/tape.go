package io

import (
	"errors"
	"io"
	"iter"
	"maps"
)

// Tape provides sequential character I/O for the machine's terminal.
// It wraps an io.Reader for input and an io.Writer for output. A nil
// Input reads as an exhausted stream; a nil Output must not be written.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// ReadChar returns the next byte of the input stream. End of input is
// reported as ErrInputExhausted.
func (tc *Tape) ReadChar() (value byte, err error) {
	if tc.Input == nil {
		err = ErrInputExhausted
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrInputExhausted
	}
	if err != nil {
		return
	}

	value = one[0]
	return
}

// WriteChar emits a single byte to the output stream.
func (tc *Tape) WriteChar(value byte) (err error) {
	_, err = tc.Output.Write([]byte{value})
	return
}
