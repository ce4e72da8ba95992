package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Object format constants, per spec.md §4.5 / original_source's assembler.py.
const (
	objMagic   uint32 = 0x72303B3E
	objVersion uint32 = 0x00000001
)

// numBuiltins is the count of library functions declared ahead of user
// code; they occupy global symbol slots but are never serialized as
// functions (they have no instruction body for this compiler to emit —
// the runtime provides them natively).
var numBuiltins = len(builtins)

// EncodeObject serializes prog into the navm binary object format.
//
// Layout (all integers big-endian, per spec.md §4.5):
//   magic u32, version u32
//   string literal count u32, then each: is_const u8 + length u32 + raw bytes
//   global symbol count u32, then each: is_const u8, value_length u32
//     (functions carry their name_length + name bytes here; variables
//     carry value_length=8 followed by an 8-byte zero placeholder slot)
//   function count u32, then each:
//     name_offset u32, ret_slots u32, num_args u32, num_locals u32,
//     instruction_count u32, then each instruction.
//
// Grounded on original_source/src/vm/assembler.py and byte_casting.py;
// encoding/binary is used directly rather than any third-party codec
// since the wire format is a small fixed big-endian struct layout that
// no serialization library in the corpus models more directly than the
// standard library's BigEndian helpers.
func EncodeObject(prog *Program) ([]byte, error) {
	var buf bytes.Buffer

	writeU32 := func(v uint32) { binary.Write(&buf, binary.BigEndian, v) }
	writeU64 := func(v uint64) { binary.Write(&buf, binary.BigEndian, v) }
	writeI32 := func(v int32) { binary.Write(&buf, binary.BigEndian, v) }
	writeF64 := func(v float64) { binary.Write(&buf, binary.BigEndian, math.Float64bits(v)) }

	writeU32(objMagic)
	writeU32(objVersion)

	writeU32(uint32(len(prog.Strs)))
	for _, s := range prog.Strs {
		raw := []byte(s)
		buf.WriteByte(1) // is_const: string literals are always constant
		writeU32(uint32(len(raw)))
		buf.Write(raw)
	}

	writeU32(uint32(len(prog.Globals)))
	for _, g := range prog.Globals {
		switch e := g.(type) {
		case *FuncAttrs:
			buf.WriteByte(1) // is_const
			name := []byte(e.Name)
			writeU32(uint32(len(name)))
			buf.Write(name)
		case *VarAttrs:
			if e.IsConst {
				buf.WriteByte(1)
			} else {
				buf.WriteByte(0)
			}
			writeU32(8)   // value_length: reserved slot is 8 bytes wide
			writeU64(0)   // reserved value slot, filled by the running VM
		}
	}

	serialized := prog.Funcs // includes _start at index 0; builtins were never appended to Funcs
	writeU32(uint32(len(serialized)))
	for _, f := range serialized {
		writeU32(f.Attrs.GlobalSlot)
		retSlots := uint32(0)
		if f.Attrs.RetTy != TyVoid {
			retSlots = 1
		}
		writeU32(retSlots)
		writeU32(uint32(len(f.Attrs.ArgTys)))
		writeU32(f.NumLocals)
		writeU32(uint32(len(f.Body)))
		for _, instr := range f.Body {
			buf.WriteByte(byte(instr.Op))
			switch instr.Op.OperandClass() {
			case operandSigned32:
				v, _ := instr.Operand.(int32)
				writeI32(v)
			case operandUnsigned32:
				v, _ := instr.Operand.(uint32)
				writeU32(v)
			case operandPush64:
				switch ov := instr.Operand.(type) {
				case uint64:
					writeU64(ov)
				case float64:
					writeF64(ov)
				default:
					return nil, fmt.Errorf("object: PUSH instruction at ip=%d missing operand", instr.IP)
				}
			}
		}
	}

	return buf.Bytes(), nil
}
