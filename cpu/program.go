package cpu

import (
	"encoding/binary"
	"io"
	"iter"
)

// Opcode is a single assembled line: its source location, the words of
// the source text, and the generated program words. LinkLabel, when not
// empty, names a label whose address replaces Data[LinkSlot] at link.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Data      []Word
	LinkLabel string
	LinkSlot  int
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Data) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

func (prog *Program) Len() (length int) {
	if len(prog.Opcodes) == 0 {
		return
	}

	last := prog.Opcodes[len(prog.Opcodes)-1]

	return last.Addr + len(last.Data)
}

func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for _, op := range prog.Opcodes {
			for n, word := range op.Data {
				if !yield(op.Addr+n, word) {
					return
				}
			}
		}
	}
}

// Image returns the program as a flat word slice, for loading at
// address zero.
func (prog *Program) Image() (image []Word) {
	image = make([]Word, 0, prog.Len())
	for _, word := range prog.Codes() {
		image = append(image, word)
	}

	return
}

// Binary returns the program as a little-endian byte image.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, prog.Len()*2)
	for _, word := range prog.Codes() {
		bins = binary.LittleEndian.AppendUint16(bins, uint16(word))
	}

	return
}

// ReadProgram reads a little-endian binary image.
func ReadProgram(input io.Reader) (prog *Program, err error) {
	bins, err := io.ReadAll(input)
	if err != nil {
		return
	}

	if len(bins)%2 != 0 {
		err = ErrImageOdd
		return
	}
	if len(bins)/2 > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	data := make([]Word, 0, len(bins)/2)
	for n := 0; n < len(bins); n += 2 {
		data = append(data, Word(binary.LittleEndian.Uint16(bins[n:])))
	}

	prog = &Program{}
	if len(data) != 0 {
		prog.Opcodes = []Opcode{{Data: data}}
	}

	return
}
