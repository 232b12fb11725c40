package vm

// Opcode identifies one of the seven numeric bitwise instructions.
// Operand layout is {dst, left, right} for all except Not, which
// uses {dst, right} (left is unused).
type Opcode byte

const (
	OpAnd Opcode = iota
	OpOr
	OpXor
	OpShl
	OpSar
	OpShr
	OpNot
)

// shiftMask is applied to the right operand of every shift: ECMA-262
// 11.7 masks the shift count to five bits, so a shift by 33 behaves
// as a shift by 1.
const shiftMask = 0x1F

// resolveOperand reads idx from env and coerces it to a number,
// short-circuiting on the first abrupt completion either step
// produces. This is the pipeline step every handler below shares.
func resolveOperand(env Env, idx uint8) (float64, Completion) {
	v := env.GetVariable(idx)
	if v.IsAbrupt() {
		return 0, v
	}
	n := env.ToNumber(v.Value)
	if n.IsAbrupt() {
		return 0, n
	}
	return n.Value.Number, Completion{}
}

// resolveBinaryOperands resolves and coerces both operands of a
// binary bitwise opcode, in left-to-right order, propagating the
// first failure.
func resolveBinaryOperands(env Env, left, right uint8) (leftNum, rightNum float64, abrupt Completion, ok bool) {
	leftNum, c := resolveOperand(env, left)
	if c.IsAbrupt() {
		return 0, 0, c, false
	}
	rightNum, c = resolveOperand(env, right)
	if c.IsAbrupt() {
		return 0, 0, c, false
	}
	return leftNum, rightNum, Completion{}, true
}

// store writes result to dst and, on success, reports the store's
// own completion (which may itself be abrupt) rather than inventing
// a fresh Normal completion — a failing set_variable must still
// propagate.
func store(env Env, pc int, dst uint8, result float64) Completion {
	return env.SetVariable(pc, dst, NumberValue(result))
}

// ExecAnd implements the And opcode: int32_to_number(ToUint32(left) & ToUint32(right)).
func ExecAnd(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	result := Int32ToNumber(Int32(NumberToUint32(l) & NumberToUint32(r)))
	return store(env, pc, dst, result)
}

// ExecOr implements the Or opcode.
func ExecOr(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	result := Int32ToNumber(Int32(NumberToUint32(l) | NumberToUint32(r)))
	return store(env, pc, dst, result)
}

// ExecXor implements the Xor opcode.
func ExecXor(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	result := Int32ToNumber(Int32(NumberToUint32(l) ^ NumberToUint32(r)))
	return store(env, pc, dst, result)
}

// ExecShl implements the Shl opcode: ToInt32(left) << (ToUint32(right) & 0x1F).
func ExecShl(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	count := NumberToUint32(r) & shiftMask
	result := Int32ToNumber(NumberToInt32(l) << count)
	return store(env, pc, dst, result)
}

// ExecSar implements the Sar opcode: arithmetic right shift, sign-extending.
func ExecSar(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	count := NumberToUint32(r) & shiftMask
	result := Int32ToNumber(NumberToInt32(l) >> count)
	return store(env, pc, dst, result)
}

// ExecShr implements the Shr opcode: logical right shift, zero-filling.
func ExecShr(env Env, pc int, dst, left, right uint8) Completion {
	l, r, abrupt, ok := resolveBinaryOperands(env, left, right)
	if !ok {
		return abrupt
	}
	count := NumberToUint32(r) & shiftMask
	result := Uint32ToNumber(NumberToUint32(l) >> count)
	return store(env, pc, dst, result)
}

// ExecNot implements the Not opcode: bitwise complement of ToUint32(right),
// reinterpreted as a signed int32 then widened back to Number.
func ExecNot(env Env, pc int, dst, right uint8) Completion {
	r, c := resolveOperand(env, right)
	if c.IsAbrupt() {
		return c
	}
	result := Int32ToNumber(Int32(^NumberToUint32(r)))
	return store(env, pc, dst, result)
}
