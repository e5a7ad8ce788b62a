package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeOpcodes() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"set", "r0", "16"},
				Data: []Word{1, 32768, 16}},
			{LineNo: 2, Addr: 3, Words: []string{"set", "r1", "32"},
				Data: []Word{1, 32769, 32}},
			{LineNo: 3, Addr: 6, Words: []string{"add", "r0", "r0", "r1"},
				Data: []Word{9, 32768, 32768, 32769}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(6)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	dbg := prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_MultipleWordsPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	dbg := prog.Debug(1)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(9)
	assert.Equal(3, dbg.Opcode.LineNo)
	assert.Equal(3, dbg.Index)
}

func TestProgram_Len(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Equal(0, prog.Len())

	prog = threeOpcodes()
	assert.Equal(10, prog.Len())
}

func TestProgram_Image(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	image := prog.Image()
	assert.Equal([]Word{1, 32768, 16, 1, 32769, 32, 9, 32768, 32768, 32769}, image)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"set", "r0", "16"},
				Data: []Word{1, 32768, 16}},
		},
	}

	bins := prog.Binary()
	assert.Equal([]byte{0x01, 0x00, 0x00, 0x80, 0x10, 0x00}, bins)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	addrs := []int{}
	words := []Word{}
	for addr, word := range prog.Codes() {
		addrs = append(addrs, addr)
		words = append(words, word)
	}

	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, addrs)
	assert.Equal(prog.Image(), words)
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	count := 0
	for range prog.Codes() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestProgram_Codes_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{},
	}

	count := 0
	for range prog.Codes() {
		count++
	}

	assert.Equal(0, count)
}

func TestProgram_ReadProgram(t *testing.T) {
	assert := assert.New(t)

	bins := []byte{0x09, 0x00, 0x00, 0x80, 0x01, 0x80, 0x04, 0x00}
	prog, err := ReadProgram(bytes.NewReader(bins))
	assert.NoError(err)
	assert.Equal([]Word{9, 32768, 32769, 4}, prog.Image())
	assert.Equal(4, prog.Len())
}

func TestProgram_ReadProgram_Odd(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadProgram(bytes.NewReader([]byte{0x09, 0x00, 0x00}))
	assert.ErrorIs(err, ErrImageOdd)
}

func TestProgram_ReadProgram_TooLarge(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadProgram(bytes.NewReader(make([]byte, (MEMORY_SIZE+1)*2)))
	assert.ErrorIs(err, ErrImageSize)
}

func TestProgram_ReadProgram_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := ReadProgram(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Empty(prog.Image())
}

func TestProgram_BinaryRoundTrip(t *testing.T) {
	assert := assert.New(t)

	prog := threeOpcodes()

	read, err := ReadProgram(bytes.NewReader(prog.Binary()))
	assert.NoError(err)
	assert.Equal(prog.Image(), read.Image())
}

func TestProgram_Integration_ParseAndBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"set r0 0x100",
		"set r1 0x200",
		"add r0 r0 r1",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	assert.Equal([]Word{1, 32768, 256, 1, 32769, 512, 9, 32768, 32768, 32769}, prog.Image())

	read, err := ReadProgram(bytes.NewReader(prog.Binary()))
	assert.NoError(err)
	assert.Equal(prog.Image(), read.Image())
}

func TestProgram_Integration_ParseAndDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"set r0 0x100",
		"set r1 0x200",
		"add r0 r0 r1",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)

	dbg = prog.Debug(6)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
}
