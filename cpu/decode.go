package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"gbcore/mask"
)

// Op is the body of an instruction: given the Cpu and the raw opcode byte (so
// field-carrying instructions can pull their operand out of it), it performs
// the instruction's effect and returns an error if a bus access failed or an
// operand field was invalid.
type Op func(c *Cpu, opcode byte) error

// Instruction is one entry of the dispatch table: a human-readable name, the
// bit-pattern template it was expanded from, and its execution body. Which
// table (unprefixed or CB-prefixed) an Instruction belongs to is determined
// by which slice register() is called with in init(), not by a field here.
type Instruction struct {
	Name    string
	Pattern string
	Op      Op
}

// field tokens recognized in a pattern, and the bit-string variations they
// expand to. rrr/qqq stand for the same 3-bit register encoding (0b110 is
// reserved, since that slot means "(HL)"); ss/dd stand for the same 2-bit
// register-pair encoding, whose code 0b11 (SP or AF) is disambiguated by the
// instruction body that reads it. cc is a 2-bit condition, bbb a bit index,
// ttt an RST page.
var (
	registerVariations = []string{"000", "001", "010", "011", "100", "101", "111"}
	twoBitVariations   = []string{"00", "01", "10", "11"}
	threeBitVariations = []string{"000", "001", "010", "011", "100", "101", "110", "111"}
)

type patternField struct {
	token      string
	variations []string
}

var patternFields = []patternField{
	{"rrr", registerVariations},
	{"qqq", registerVariations},
	{"ss", twoBitVariations},
	{"dd", twoBitVariations},
	{"cc", twoBitVariations},
	{"bbb", threeBitVariations},
	{"ttt", threeBitVariations},
}

// expandPattern turns a spaced bit-pattern template (e.g. "10 000 rrr") into
// the concrete set of opcode bytes it denotes, by iteratively substituting
// every occurrence of a field token with each of its possible bit strings.
func expandPattern(pattern string) []byte {
	trimmed := strings.ReplaceAll(pattern, " ", "")

	pending := []string{trimmed}
	seen := make(map[byte]struct{})

	for len(pending) > 0 {
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		expanded := false
		for _, field := range patternFields {
			if strings.Contains(s, field.token) {
				for _, variation := range field.variations {
					pending = append(pending, strings.Replace(s, field.token, variation, 1))
				}
				expanded = true
				break
			}
		}
		if expanded {
			continue
		}

		value, err := strconv.ParseUint(s, 2, 8)
		if err != nil {
			panic(fmt.Sprintf("cpu: invalid opcode pattern %q: %v", s, err))
		}
		seen[byte(value)] = struct{}{}
	}

	opcodes := make([]byte, 0, len(seen))
	for b := range seen {
		opcodes = append(opcodes, b)
	}
	return opcodes
}

// OperandFieldKind distinguishes the four operand fields a decode can fail
// to parse out of an opcode byte.
type OperandFieldKind int

const (
	BadRegister OperandFieldKind = iota
	BadRegisterPair
	BadCondition
	BadPage
)

func (k OperandFieldKind) String() string {
	switch k {
	case BadRegister:
		return "register"
	case BadRegisterPair:
		return "register pair"
	case BadCondition:
		return "condition"
	case BadPage:
		return "page"
	default:
		return "operand field"
	}
}

// OperandFieldError reports that an opcode's field held a value with no
// meaning in the given context — chiefly register code 0b110, which is
// reserved (it means "(HL)", not a seventh register) wherever an r or q
// field is extracted with extractRegister.
type OperandFieldError struct {
	Kind OperandFieldKind
	Raw  byte
}

func (e *OperandFieldError) Error() string {
	return fmt.Sprintf("cpu: invalid %s field: %#03b", e.Kind, e.Raw)
}

// bitField pulls a width-bit field out of opcode at the given LSB-counted
// shift, via the mask package's 1-indexed MSB-first Range — the same
// bit-range helper the teacher uses everywhere else it slices a byte. The
// (shift, width) pairs below are exactly the ones spec.md's field layouts
// produce; every call site passes a compile-time constant.
func bitField(opcode byte, shift, width uint) byte {
	switch {
	case shift == 0 && width == 3:
		return mask.Range(opcode, mask.I6, mask.I8)
	case shift == 3 && width == 3:
		return mask.Range(opcode, mask.I3, mask.I5)
	case shift == 3 && width == 2:
		return mask.Range(opcode, mask.I4, mask.I5)
	case shift == 4 && width == 2:
		return mask.Range(opcode, mask.I3, mask.I4)
	default:
		panic(fmt.Sprintf("cpu: unsupported opcode field shift=%d width=%d", shift, width))
	}
}

// extractRegister pulls a 3-bit register field out of opcode at the given
// bit shift, rejecting the reserved code 0b110.
func extractRegister(opcode byte, shift uint) (Register, error) {
	raw := bitField(opcode, shift, 3)
	if raw == 0b110 {
		return 0, &OperandFieldError{Kind: BadRegister, Raw: raw}
	}
	return Register(raw), nil
}

// extractRegisterPair pulls a 2-bit dd/ss register-pair field (SP at 0b11).
func extractRegisterPair(opcode byte, shift uint) RegisterPair {
	return RegisterPair(bitField(opcode, shift, 2))
}

// extractStackPair pulls a 2-bit qq register-pair field (AF at 0b11).
func extractStackPair(opcode byte, shift uint) StackPair {
	return StackPair(bitField(opcode, shift, 2))
}

// extractCondition pulls a 2-bit cc condition field.
func extractCondition(opcode byte, shift uint) Condition {
	return Condition(bitField(opcode, shift, 2))
}

// extractBit pulls a 3-bit bit-index field (0-7), used by BIT/SET/RES.
func extractBit(opcode byte, shift uint) uint {
	return uint(bitField(opcode, shift, 3))
}

// pageAddresses is the RST instruction's ttt -> page-address table.
var pageAddresses = [8]uint16{
	0x0000, 0x0008, 0x0010, 0x0018, 0x0020, 0x0028, 0x0030, 0x0038,
}

// extractPage pulls a 3-bit RST page field and resolves it to its address.
func extractPage(opcode byte, shift uint) uint16 {
	return pageAddresses[bitField(opcode, shift, 3)]
}

// DecodeError reports that an opcode byte had no registered instruction in
// the table selected by the prefix latch.
type DecodeError struct {
	Prefixed bool
	Opcode   byte
}

func (e *DecodeError) Error() string {
	prefix := "unprefixed"
	if e.Prefixed {
		prefix = "CB-prefixed"
	}
	return fmt.Sprintf("cpu: illegal %s opcode %#02x", prefix, e.Opcode)
}

// unprefixedTable and prefixedTable are the two 256-entry dispatch tables,
// built once by init (below) and never mutated after.
var unprefixedTable [256]*Instruction
var prefixedTable [256]*Instruction

func register(table *[256]*Instruction, inst Instruction) {
	stored := inst
	for _, opcode := range expandPattern(inst.Pattern) {
		if table[opcode] != nil {
			panic(fmt.Sprintf("cpu: opcode %#02x already registered to %q, cannot register %q", opcode, table[opcode].Name, inst.Name))
		}
		table[opcode] = &stored
	}
}

func init() {
	for _, inst := range arithmeticInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range logicalInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range loadingInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range jumpInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range callInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range generalInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range nonPrefixedRotatingInstructions {
		register(&unprefixedTable, inst)
	}
	for _, inst := range prefixedRotatingInstructions {
		register(&prefixedTable, inst)
	}
	for _, inst := range bitInstructions {
		register(&prefixedTable, inst)
	}
}
