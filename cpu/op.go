package cpu

// Op is an instruction operation code.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HALT = Op(0)  // halt
	OP_SET  = Op(1)  // set
	OP_PUSH = Op(2)  // push
	OP_POP  = Op(3)  // pop
	OP_EQ   = Op(4)  // eq
	OP_GT   = Op(5)  // gt
	OP_JMP  = Op(6)  // jmp
	OP_JT   = Op(7)  // jt
	OP_JF   = Op(8)  // jf
	OP_ADD  = Op(9)  // add
	OP_MULT = Op(10) // mult
	OP_MOD  = Op(11) // mod
	OP_AND  = Op(12) // and
	OP_OR   = Op(13) // or
	OP_NOT  = Op(14) // not
	OP_RMEM = Op(15) // rmem
	OP_WMEM = Op(16) // wmem
	OP_CALL = Op(17) // call
	OP_RET  = Op(18) // ret
	OP_OUT  = Op(19) // out
	OP_IN   = Op(20) // in
	OP_NOOP = Op(21) // noop
)

// Valid returns true if the operation is in the instruction set.
func (op Op) Valid() bool {
	return op >= OP_HALT && op <= OP_NOOP
}

// Arity returns the number of operand words the operation consumes.
func (op Op) Arity() int {
	switch op {
	case OP_PUSH, OP_POP, OP_JMP, OP_CALL, OP_OUT, OP_IN:
		return 1
	case OP_SET, OP_JT, OP_JF, OP_NOT, OP_RMEM, OP_WMEM:
		return 2
	case OP_EQ, OP_GT, OP_ADD, OP_MULT, OP_MOD, OP_AND, OP_OR:
		return 3
	}

	return 0
}

// HasTarget returns true if the operation's first operand names a
// register to write.
func (op Op) HasTarget() bool {
	switch op {
	case OP_SET, OP_POP, OP_EQ, OP_GT, OP_ADD, OP_MULT, OP_MOD,
		OP_AND, OP_OR, OP_NOT, OP_RMEM, OP_IN:
		return true
	}

	return false
}
