package cpu

import (
	"errors"

	"github.com/ezrec/synvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted        = errors.New(f("halted"))
	ErrStackEmpty    = errors.New(f("stack empty"))
	ErrStackFull     = errors.New(f("stack full"))
	ErrValueRange    = errors.New(f("operand is not a literal or register"))
	ErrRegisterRange = errors.New(f("target is not a register"))
	ErrMemoryRange   = errors.New(f("memory address out of range"))
	ErrPcRange       = errors.New(f("program counter out of bounds"))
	ErrOpUnknown     = errors.New(f("unknown opcode"))
	ErrModuloZero    = errors.New(f("modulo by zero"))
	ErrTerminalNone  = errors.New(f("no terminal attached"))

	// Image errors
	ErrImageOdd  = errors.New(f("image has an odd byte length"))
	ErrImageSize = errors.New(f("image exceeds memory"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelExtra         = errors.New(f("multiple labels in operands"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrOp struct {
	Op Op
	Pc int
}

func (eo ErrOp) Error() string {
	return f("%v [pc:%d]", eo.Op, eo.Pc)
}

func (eo ErrOp) Is(err error) (ok bool) {
	_, ok = err.(ErrOp)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
