package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/synvm/io"
)

// Terminal is the character I/O channel interface.
type Terminal io.Terminal

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_LIMIT": fmt.Sprintf("%d", STACK_LIMIT),
	"REG0":        fmt.Sprintf("%d", REG_LOW+0),
	"REG1":        fmt.Sprintf("%d", REG_LOW+1),
	"REG2":        fmt.Sprintf("%d", REG_LOW+2),
	"REG3":        fmt.Sprintf("%d", REG_LOW+3),
	"REG4":        fmt.Sprintf("%d", REG_LOW+4),
	"REG5":        fmt.Sprintf("%d", REG_LOW+5),
	"REG6":        fmt.Sprintf("%d", REG_LOW+6),
	"REG7":        fmt.Sprintf("%d", REG_LOW+7),
}

// Cpu is the simulation context for the machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int       // Current program counter.
	Register Registers // Register bank.
	Stack    Stack     // Stack simulation.
	Mem      Memory    // Word address space.
	Length   int       // Words of loaded program; Pc may not exceed this.

	Ticks int // Executed instruction counter.

	Term Terminal // Terminal channel for the in and out operations.
}

// NewCpu creates a new CPU with cleared memory and registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
		"ticks",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", cpu.Pc)
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			val := cpu.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("0x%04x", val)
		case "stack":
			val, ok := cpu.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("0x%04x depth %d", val, len(cpu.Stack.Data))
			} else {
				strval = "----"
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, stack, and memory.
// - Zeros the program counter and statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Stack.Reset()
	cpu.Mem = Memory{}
	cpu.Pc = 0
	cpu.Length = 0
	cpu.Ticks = 0
}

// Load copies a program image into memory at address zero, and sets the
// program length bound for the program counter.
func (cpu *Cpu) Load(image []Word) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	cpu.Mem.Load(image)
	cpu.Length = len(image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d words", len(image))
	}

	return
}

// Snapshot returns a copy of the full machine state.
func (cpu *Cpu) Snapshot() (snap *Cpu) {
	snap = &Cpu{}
	*snap = *cpu
	snap.Stack.Data = slices.Clone(cpu.Stack.Data)

	return
}

// Fetch reads the operation at the program counter, and its operand words.
func (cpu *Cpu) Fetch() (op Op, args [3]Word, err error) {
	if cpu.Pc < 0 || cpu.Pc >= MEMORY_SIZE {
		err = ErrPcRange
		return
	}

	op = Op(cpu.Mem.Read(Word(cpu.Pc)))

	arity := op.Arity()
	if cpu.Pc+arity >= MEMORY_SIZE {
		err = ErrMemoryRange
		return
	}
	for n := range arity {
		args[n] = cpu.Mem.Read(Word(cpu.Pc + 1 + n))
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	op, args, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(op, args)

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(op Op, args [3]Word) (err error) {
	pc := cpu.Pc
	defer func() {
		if err != nil {
			err = errors.Join(ErrOp{Op: op, Pc: pc}, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%5d: %-4v %v", pc, op, args[:op.Arity()])
	}

	next := pc + 1 + op.Arity()

	a, b, c := args[0], args[1], args[2]

	switch op {
	case OP_HALT:
		if cpu.Verbose {
			log.Printf("cpu: halted [pc:%d] [ticks:%d]", pc, cpu.Ticks)
		}
		err = ErrHalted
		return
	case OP_SET:
		var value Word
		value, err = cpu.value(b)
		if err != nil {
			return
		}
		err = cpu.Register.Write(a, value)
		if err != nil {
			return
		}
	case OP_PUSH:
		var value Word
		value, err = cpu.value(a)
		if err != nil {
			return
		}
		if cpu.Stack.Full() {
			err = ErrStackFull
			return
		}
		cpu.Stack.Push(value)
	case OP_POP:
		value, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		err = cpu.Register.Write(a, value)
		if err != nil {
			return
		}
	case OP_EQ, OP_GT, OP_ADD, OP_MULT, OP_MOD, OP_AND, OP_OR:
		var vb, vc Word
		vb, err = cpu.value(b)
		if err != nil {
			return
		}
		vc, err = cpu.value(c)
		if err != nil {
			return
		}
		var result Word
		result, err = cpu.doAlu(op, vb, vc)
		if err != nil {
			return
		}
		err = cpu.Register.Write(a, result)
		if err != nil {
			return
		}
	case OP_JMP:
		var target Word
		target, err = cpu.value(a)
		if err != nil {
			return
		}
		next = int(target)
	case OP_JT, OP_JF:
		var test Word
		test, err = cpu.value(a)
		if err != nil {
			return
		}
		taken := test != 0
		if op == OP_JF {
			taken = !taken
		}
		// The target operand is only resolved on a taken branch.
		if taken {
			var target Word
			target, err = cpu.value(b)
			if err != nil {
				return
			}
			next = int(target)
		}
	case OP_NOT:
		var value Word
		value, err = cpu.value(b)
		if err != nil {
			return
		}
		err = cpu.Register.Write(a, ^value&MAX_LITERAL)
		if err != nil {
			return
		}
	case OP_RMEM:
		var addr Word
		addr, err = cpu.value(b)
		if err != nil {
			return
		}
		if int(addr) >= MEMORY_SIZE {
			err = ErrMemoryRange
			return
		}
		err = cpu.Register.Write(a, cpu.Mem.Read(addr))
		if err != nil {
			return
		}
	case OP_WMEM:
		var addr, value Word
		addr, err = cpu.value(a)
		if err != nil {
			return
		}
		value, err = cpu.value(b)
		if err != nil {
			return
		}
		if int(addr) >= MEMORY_SIZE {
			err = ErrMemoryRange
			return
		}
		cpu.Mem.Write(addr, value)
	case OP_CALL:
		var target Word
		target, err = cpu.value(a)
		if err != nil {
			return
		}
		if cpu.Stack.Full() {
			err = ErrStackFull
			return
		}
		cpu.Stack.Push(Word(next))
		next = int(target)
	case OP_RET:
		target, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		next = int(target)
	case OP_OUT:
		var value Word
		value, err = cpu.value(a)
		if err != nil {
			return
		}
		if cpu.Term == nil {
			err = ErrTerminalNone
			return
		}
		err = cpu.Term.WriteChar(byte(value))
		if err != nil {
			return
		}
	case OP_IN:
		if cpu.Term == nil {
			err = ErrTerminalNone
			return
		}
		var value byte
		value, err = cpu.Term.ReadChar()
		if err != nil {
			return
		}
		err = cpu.Register.Write(a, Word(value))
		if err != nil {
			return
		}
	case OP_NOOP:
		// pass
	default:
		err = ErrOpUnknown
		return
	}

	cpu.Pc = next
	cpu.Ticks += 1

	if cpu.Pc < 0 || cpu.Pc > cpu.Length {
		err = ErrPcRange
		return
	}

	return
}

// value resolves an operand field to a literal or register value.
func (cp *Cpu) value(field Word) (value Word, err error) {
	return cp.Register.Read(field)
}

// doAlu performs the requested arithmetic or comparison, and returns
// the output value reduced modulo the machine word.
func (cp *Cpu) doAlu(op Op, b Word, c Word) (value Word, err error) {
	switch op {
	case OP_EQ:
		if b == c {
			value = 1
		}
	case OP_GT:
		if b > c {
			value = 1
		}
	case OP_ADD:
		value = Word((uint32(b) + uint32(c)) % MODULUS)
	case OP_MULT:
		value = Word(uint32(b) * uint32(c) % MODULUS)
	case OP_MOD:
		if c == 0 {
			err = ErrModuloZero
			return
		}
		value = b % c
	case OP_AND:
		value = b & c
	case OP_OR:
		value = b | c
	}

	return
}
