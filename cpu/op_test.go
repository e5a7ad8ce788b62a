package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp_Arity(t *testing.T) {
	assert := assert.New(t)

	arities := [](struct {
		op    Op
		arity int
	}){
		{OP_HALT, 0},
		{OP_SET, 2},
		{OP_PUSH, 1},
		{OP_POP, 1},
		{OP_EQ, 3},
		{OP_GT, 3},
		{OP_JMP, 1},
		{OP_JT, 2},
		{OP_JF, 2},
		{OP_ADD, 3},
		{OP_MULT, 3},
		{OP_MOD, 3},
		{OP_AND, 3},
		{OP_OR, 3},
		{OP_NOT, 2},
		{OP_RMEM, 2},
		{OP_WMEM, 2},
		{OP_CALL, 1},
		{OP_RET, 0},
		{OP_OUT, 1},
		{OP_IN, 1},
		{OP_NOOP, 0},
	}

	for _, test := range arities {
		assert.Equal(test.arity, test.op.Arity(), "%v", test.op)
	}

	assert.Equal(0, Op(22).Arity())
	assert.Equal(0, Op(-1).Arity())
}

func TestOp_Valid(t *testing.T) {
	assert := assert.New(t)

	for op := OP_HALT; op <= OP_NOOP; op++ {
		assert.True(op.Valid(), "%v", op)
	}

	assert.False(Op(-1).Valid())
	assert.False(Op(22).Valid())
	assert.False(Op(32768).Valid())
}

func TestOp_HasTarget(t *testing.T) {
	assert := assert.New(t)

	targets := map[Op]bool{
		OP_SET:  true,
		OP_POP:  true,
		OP_EQ:   true,
		OP_GT:   true,
		OP_ADD:  true,
		OP_MULT: true,
		OP_MOD:  true,
		OP_AND:  true,
		OP_OR:   true,
		OP_NOT:  true,
		OP_RMEM: true,
		OP_IN:   true,
	}

	for op := OP_HALT; op <= OP_NOOP; op++ {
		assert.Equal(targets[op], op.HasTarget(), "%v", op)
	}
}

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", OP_HALT.String())
	assert.Equal("jt", OP_JT.String())
	assert.Equal("mult", OP_MULT.String())
	assert.Equal("noop", OP_NOOP.String())
	assert.Equal("Op(22)", Op(22).String())
}
