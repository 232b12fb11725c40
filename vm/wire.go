package vm

import "fmt"

// Instruction is the decoded form of the 4-byte bitwise opcode wire
// format: opcode_tag, dst, left, right. Not instructions carry
// left == 0 on the wire (unused).
type Instruction struct {
	Op          Opcode
	Dst         uint8
	Left, Right uint8
}

// DecodeInstruction reads one 4-byte instruction from raw. It panics
// if raw is shorter than 4 bytes — malformed opcode streams are a
// code-generator contract violation, not a runtime condition this
// package recovers from.
func DecodeInstruction(raw []byte) Instruction {
	if len(raw) < 4 {
		panic("vm: opcode stream truncated")
	}
	return Instruction{
		Op:    Opcode(raw[0]),
		Dst:   raw[1],
		Left:  raw[2],
		Right: raw[3],
	}
}

// Exec dispatches a decoded instruction to its handler and reports the
// program counter the caller's dispatch loop should continue at: pc+1
// on a Normal completion, unchanged on any abrupt completion (Throw,
// Return, Break, Continue), which short-circuits the enclosing
// construct instead of falling through to the next instruction. The
// pc passed in is also threaded through to SetVariable for
// environments that need it to resolve dst.
func Exec(env Env, pc int, ins Instruction) (int, Completion) {
	var c Completion
	switch ins.Op {
	case OpAnd:
		c = ExecAnd(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpOr:
		c = ExecOr(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpXor:
		c = ExecXor(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpShl:
		c = ExecShl(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpSar:
		c = ExecSar(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpShr:
		c = ExecShr(env, pc, ins.Dst, ins.Left, ins.Right)
	case OpNot:
		c = ExecNot(env, pc, ins.Dst, ins.Right)
	default:
		panic(fmt.Sprintf("vm: unknown opcode tag %d", ins.Op))
	}
	if c.IsAbrupt() {
		return pc, c
	}
	return pc + 1, c
}
