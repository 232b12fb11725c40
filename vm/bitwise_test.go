package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv is a minimal in-memory Env: variables are floats keyed by
// idx, set_variable records what was stored under dst.
type fakeEnv struct {
	vars    map[uint8]float64
	stored  map[uint8]float64
	failGet map[uint8]bool
	failSet bool
}

func newFakeEnv(vars map[uint8]float64) *fakeEnv {
	return &fakeEnv{vars: vars, stored: map[uint8]float64{}}
}

func (e *fakeEnv) GetVariable(idx uint8) Completion {
	if e.failGet[idx] {
		return ThrowValue(Value{Other: "no such variable"})
	}
	return NormalValue(NumberValue(e.vars[idx]))
}

func (e *fakeEnv) SetVariable(pc int, idx uint8, value Value) Completion {
	if e.failSet {
		return ThrowValue(Value{Other: "store failed"})
	}
	e.stored[idx] = value.Number
	return NormalValue(value)
}

func (e *fakeEnv) ToNumber(v Value) Completion {
	return NormalValue(v)
}

func TestExecAndOrXor(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: 12, 2: 10})

	c := ExecAnd(env, 0, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(12&10), env.stored[0])

	c = ExecOr(env, 0, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(12|10), env.stored[0])

	c = ExecXor(env, 0, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(12^10), env.stored[0])
}

func TestExecShiftsMaskCountToFiveBits(t *testing.T) {
	// Shl dst=0 left=1 right=2, left=3, right=33: 33 & 31 == 1, so
	// this must equal "3 << 1" exactly as in the spec's worked
	// example.
	env := newFakeEnv(map[uint8]float64{1: 3, 2: 33})
	c := ExecShl(env, 7, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(6), env.stored[0])
}

func TestExecSarIsArithmetic(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: -8, 2: 1})
	c := ExecSar(env, 0, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(-4), env.stored[0])
}

func TestExecShrIsLogical(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: -1, 2: 28})
	c := ExecShr(env, 0, 0, 1, 2)
	require.Equal(t, Normal, c.Kind)
	// ToUint32(-1) == 0xFFFFFFFF; >> 28 == 0xF == 15.
	assert.Equal(t, float64(15), env.stored[0])
}

func TestExecNot(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{2: 0})
	c := ExecNot(env, 0, 0, 2)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(-1), env.stored[0])
}

func TestGetVariableFailurePropagates(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: 1, 2: 2})
	env.failGet = map[uint8]bool{2: true}
	c := ExecAnd(env, 0, 0, 1, 2)
	assert.Equal(t, Throw, c.Kind)
	assert.Empty(t, env.stored)
}

func TestSetVariableFailurePropagates(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: 1, 2: 2})
	env.failSet = true
	c := ExecOr(env, 0, 0, 1, 2)
	assert.Equal(t, Throw, c.Kind)
}

func TestDecodeInstructionAndExec(t *testing.T) {
	env := newFakeEnv(map[uint8]float64{1: 5, 2: 3})
	ins := DecodeInstruction([]byte{byte(OpAnd), 0, 1, 2})
	nextPC, c := Exec(env, 0, ins)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, float64(5&3), env.stored[0])
	assert.Equal(t, 1, nextPC)
}

func TestExecAdvancesPCByOneOnNormalAndHoldsOnThrow(t *testing.T) {
	ins := DecodeInstruction([]byte{byte(OpOr), 0, 1, 2})

	env := newFakeEnv(map[uint8]float64{1: 1, 2: 2})
	nextPC, c := Exec(env, 7, ins)
	require.Equal(t, Normal, c.Kind)
	assert.Equal(t, 8, nextPC)

	failing := newFakeEnv(map[uint8]float64{1: 1, 2: 2})
	failing.failGet = map[uint8]bool{2: true}
	nextPC, c = Exec(failing, 7, ins)
	require.Equal(t, Throw, c.Kind)
	assert.Equal(t, 7, nextPC, "an abrupt completion must not advance pc")
}
