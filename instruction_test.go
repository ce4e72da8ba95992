package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_operandClass(t *testing.T) {
	for _, tc := range []struct {
		op   Opcode
		want operandClass
	}{
		{OpBr, operandSigned32},
		{OpBrTrue, operandSigned32},
		{OpBrFalse, operandSigned32},
		{OpPush, operandPush64},
		{OpLoca, operandUnsigned32},
		{OpArga, operandUnsigned32},
		{OpGloba, operandUnsigned32},
		{OpCallName, operandUnsigned32},
		{OpStackAlloc, operandUnsigned32},
		{OpPop, operandNone},
		{OpAddI, operandNone},
		{OpRet, operandNone},
	} {
		assert.Equal(t, tc.want, tc.op.OperandClass(), "opcode %v", tc.op)
	}
}

func TestInstruction_setOperandToSkip(t *testing.T) {
	body := []*Instruction{
		{Op: OpBrFalse, IP: 0},
		{Op: OpNop, IP: 1},
		{Op: OpNop, IP: 2},
	}
	body[0].SetOperandToSkip(body[2])
	assert.Equal(t, int32(2), body[0].Operand, "skip lands one past the target instruction")
}

func TestInstruction_setOperandToReach(t *testing.T) {
	body := []*Instruction{
		{Op: OpBr, IP: 0},
		{Op: OpNop, IP: 1},
		{Op: OpNop, IP: 2},
	}
	body[0].SetOperandToReach(body[2])
	assert.Equal(t, int32(1), body[0].Operand, "reach lands exactly on the target instruction")
}

func TestFromVarLoad_selectsAddressOpcode(t *testing.T) {
	for _, tc := range []struct {
		storage Storage
		want    Opcode
	}{
		{StorageGlobal, OpGloba},
		{StorageArgument, OpArga},
		{StorageLocal, OpLoca},
	} {
		instr := FromVarLoad(&VarAttrs{Storage: tc.storage, Offset: 3})
		assert.Equal(t, tc.want, instr.Op)
		assert.Equal(t, uint32(3), instr.Operand)
	}
}
