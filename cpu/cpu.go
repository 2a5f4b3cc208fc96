// Package cpu implements the Sharp SM83 (LR35902), the Game Boy's CPU: its
// register/flag state, opcode decoder, instruction tables, and the
// fetch-decode-execute dispatch loop.
package cpu

import (
	"fmt"

	"gbcore/mask"
	"gbcore/mem"
)

// Register identifies one of the seven 8-bit general-purpose registers. The
// numeric values match the SM83's 3-bit r/qqq field encoding; 0b110 ("(HL)")
// is deliberately absent, since that slot means "memory at HL", not a
// register, and is handled separately by every instruction body that uses it.
type Register byte

const (
	RegB Register = 0b000
	RegC Register = 0b001
	RegD Register = 0b010
	RegE Register = 0b011
	RegH Register = 0b100
	RegL Register = 0b101
	RegA Register = 0b111
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegC:
		return "C"
	case RegD:
		return "D"
	case RegE:
		return "E"
	case RegH:
		return "H"
	case RegL:
		return "L"
	default:
		return fmt.Sprintf("Register(%#03b)", byte(r))
	}
}

// RegisterPair identifies one of the four dd/ss-style register pairs used by
// 16-bit loads, ADD HL,ss, and INC/DEC ss. Unlike StackPair (used by
// push/pop), code 0b11 here means SP, not AF.
type RegisterPair byte

const (
	PairBC RegisterPair = 0b00
	PairDE RegisterPair = 0b01
	PairHL RegisterPair = 0b10
	PairSP RegisterPair = 0b11
)

func (rp RegisterPair) String() string {
	switch rp {
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		return "HL"
	case PairSP:
		return "SP"
	default:
		return fmt.Sprintf("RegisterPair(%#02b)", byte(rp))
	}
}

// StackPair identifies one of the four qq-style register pairs used by PUSH
// and POP. Code 0b11 here means AF, not SP.
type StackPair byte

const (
	StackBC StackPair = 0b00
	StackDE StackPair = 0b01
	StackHL StackPair = 0b10
	StackAF StackPair = 0b11
)

func (sp StackPair) String() string {
	switch sp {
	case StackBC:
		return "BC"
	case StackDE:
		return "DE"
	case StackHL:
		return "HL"
	case StackAF:
		return "AF"
	default:
		return fmt.Sprintf("StackPair(%#02b)", byte(sp))
	}
}

// Condition identifies one of the four cc-style branch conditions.
type Condition byte

const (
	CondNZ Condition = 0b00
	CondZ  Condition = 0b01
	CondNC Condition = 0b10
	CondC  Condition = 0b11
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	default:
		return fmt.Sprintf("Condition(%#02b)", byte(c))
	}
}

// RunMode is the state of the Cpu's execution loop: Run is normal operation,
// Halt suspends fetch-decode-execute until an interrupt arrives, Stop
// additionally suspends the system clock.
type RunMode int

const (
	Run RunMode = iota
	Halt
	Stop
)

// Cpu holds the SM83's register file and drives the dispatch loop. It has no
// memory of its own beyond its registers; every Read/Write passes through Bus.
type Cpu struct {
	Bus *mem.Bus

	A, B, C, D, E, H, L byte
	f                   byte // packed flags: Z N H CY 0 0 0 0

	PC, SP uint16

	IME bool

	prefixed bool
	jumped   bool

	Mode RunMode

	cyclesProcessed int
}

// powerOnPC is where the SM83 starts fetching once the boot ROM hands off.
const powerOnPC = 0x0100

// New returns a Cpu wired to bus, with registers zeroed, PC at 0x0100, and
// flags clear.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{Bus: bus, Mode: Run, PC: powerOnPC}
}

// Flag bits within the packed F register.
const (
	flagZ  byte = 1 << 7
	flagN  byte = 1 << 6
	flagH  byte = 1 << 5
	flagCY byte = 1 << 4
)

func (c *Cpu) flag(mask byte) bool { return c.f&mask != 0 }

func (c *Cpu) setFlag(mask byte, value bool) {
	if value {
		c.f |= mask
	} else {
		c.f &^= mask
	}
}

func (c *Cpu) Zero() bool     { return c.flag(flagZ) }
func (c *Cpu) Negative() bool { return c.flag(flagN) }
func (c *Cpu) HalfCarry() bool { return c.flag(flagH) }
func (c *Cpu) Carry() bool    { return c.flag(flagCY) }

func (c *Cpu) SetZero(v bool)      { c.setFlag(flagZ, v) }
func (c *Cpu) SetNegative(v bool)  { c.setFlag(flagN, v) }
func (c *Cpu) SetHalfCarry(v bool) { c.setFlag(flagH, v) }
func (c *Cpu) SetCarry(v bool)     { c.setFlag(flagCY, v) }

// FlipCarry complements CY, leaving N and H clear (CCF).
func (c *Cpu) FlipCarry() {
	c.SetNegative(false)
	c.SetHalfCarry(false)
	c.setFlag(flagCY, !c.flag(flagCY))
}

// F returns the flag register with its low nibble forced to zero, as real
// hardware always reads it.
func (c *Cpu) F() byte { return c.f & 0xf0 }

func (c *Cpu) checkCondition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.Zero()
	case CondZ:
		return c.Zero()
	case CondNC:
		return !c.Carry()
	case CondC:
		return c.Carry()
	default:
		return false
	}
}

// Register reads one of the seven general-purpose registers.
func (c *Cpu) Register(r Register) byte {
	switch r {
	case RegA:
		return c.A
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	default:
		panic(fmt.Sprintf("cpu: invalid register %v", r))
	}
}

// SetRegister writes one of the seven general-purpose registers.
func (c *Cpu) SetRegister(r Register, value byte) {
	switch r {
	case RegA:
		c.A = value
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	default:
		panic(fmt.Sprintf("cpu: invalid register %v", r))
	}
}

// Pair reads a dd/ss-style register pair (SP, not AF, at code 0b11).
func (c *Cpu) Pair(rp RegisterPair) uint16 {
	switch rp {
	case PairBC:
		return mask.Word(c.B, c.C)
	case PairDE:
		return mask.Word(c.D, c.E)
	case PairHL:
		return mask.Word(c.H, c.L)
	case PairSP:
		return c.SP
	default:
		panic(fmt.Sprintf("cpu: invalid register pair %v", rp))
	}
}

// SetPair writes a dd/ss-style register pair (SP, not AF, at code 0b11).
func (c *Cpu) SetPair(rp RegisterPair, value uint16) {
	high, low := mask.SplitWord(value)
	switch rp {
	case PairBC:
		c.B, c.C = high, low
	case PairDE:
		c.D, c.E = high, low
	case PairHL:
		c.H, c.L = high, low
	case PairSP:
		c.SP = value
	default:
		panic(fmt.Sprintf("cpu: invalid register pair %v", rp))
	}
}

// StackValue reads a qq-style stack pair (AF, not SP, at code 0b11). AF's low
// byte is always the flag register with its unused low nibble forced to 0.
func (c *Cpu) StackValue(sp StackPair) uint16 {
	switch sp {
	case StackBC:
		return mask.Word(c.B, c.C)
	case StackDE:
		return mask.Word(c.D, c.E)
	case StackHL:
		return mask.Word(c.H, c.L)
	case StackAF:
		return mask.Word(c.A, c.F())
	default:
		panic(fmt.Sprintf("cpu: invalid stack pair %v", sp))
	}
}

// SetStackValue writes a qq-style stack pair (AF, not SP, at code 0b11).
func (c *Cpu) SetStackValue(sp StackPair, value uint16) {
	high, low := mask.SplitWord(value)
	switch sp {
	case StackBC:
		c.B, c.C = high, low
	case StackDE:
		c.D, c.E = high, low
	case StackHL:
		c.H, c.L = high, low
	case StackAF:
		c.A, c.f = high, low&0xf0
	default:
		panic(fmt.Sprintf("cpu: invalid stack pair %v", sp))
	}
}

func (c *Cpu) HL() uint16 { return c.Pair(PairHL) }

// Read reads one byte off the bus and charges one cycle.
func (c *Cpu) Read(addr uint16) (byte, error) {
	c.cyclesProcessed++
	return c.Bus.Read(addr)
}

// Write writes one byte to the bus and charges one cycle.
func (c *Cpu) Write(addr uint16, value byte) error {
	c.cyclesProcessed++
	return c.Bus.Write(addr, value)
}

func (c *Cpu) readHL() (byte, error)        { return c.Read(c.HL()) }
func (c *Cpu) writeHL(value byte) error     { return c.Write(c.HL(), value) }

// SetProgramCounter moves PC and charges the one internal cycle every jump
// costs beyond the bytes it reads to compute the destination. JumpTo and
// JumpRelativeTo both route through this single entry point.
func (c *Cpu) SetProgramCounter(value uint16) {
	c.PC = value
	c.cyclesProcessed++
}

// chargeInternalCycle accounts for a cycle spent on internal computation
// rather than a bus access or a PC write — used by ADD SP,e and LDHL SP,e,
// which both take longer than their fetched-byte count alone would charge.
func (c *Cpu) chargeInternalCycle() {
	c.cyclesProcessed++
}

// JumpTo sets PC to location and marks that a jump occurred this step. Step
// clears the jumped latch before each instruction and does not otherwise
// read it.
func (c *Cpu) JumpTo(location uint16) {
	c.SetProgramCounter(location)
	c.jumped = true
}

// JumpRelativeTo adds a signed 8-bit displacement to PC.
func (c *Cpu) JumpRelativeTo(offset int8) {
	var location uint16
	if offset < 0 {
		location = c.PC - uint16(-int16(offset))
	} else {
		location = c.PC + uint16(offset)
	}
	c.JumpTo(location)
}

// immediateN reads the byte at PC and advances PC past it.
func (c *Cpu) immediateN() (byte, error) {
	value, err := c.Read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return value, nil
}

// immediateE reads a signed 8-bit immediate.
func (c *Cpu) immediateE() (int8, error) {
	value, err := c.immediateN()
	return int8(value), err
}

// immediateNN reads a little-endian 16-bit immediate (two bytes).
func (c *Cpu) immediateNN() (uint16, error) {
	low, err := c.immediateN()
	if err != nil {
		return 0, err
	}
	high, err := c.immediateN()
	if err != nil {
		return 0, err
	}
	return mask.Word(high, low), nil
}

// Add performs an 8-bit add (with optional carry-in), returning the result,
// the carry-out, and the half-carry-out (carry out of bit 3).
func Add(a, b byte, carryIn bool) (result byte, carry, halfCarry bool) {
	var c byte
	if carryIn {
		c = 1
	}
	sum := uint16(a) + uint16(b) + uint16(c)
	halfCarry = (a&0x0f)+(b&0x0f)+c > 0x0f
	return byte(sum), sum > 0xff, halfCarry
}

// Sub performs an 8-bit subtract (with optional borrow-in), returning the
// result, the borrow-out, and the half-borrow-out.
func Sub(a, b byte, borrowIn bool) (result byte, borrow, halfBorrow bool) {
	var bi byte
	if borrowIn {
		bi = 1
	}
	halfBorrow = int(a&0x0f)-int(b&0x0f)-int(bi) < 0
	diff := int(a) - int(b) - int(bi)
	return byte(diff), diff < 0, halfBorrow
}

// Add16 performs a 16-bit add, returning the result plus the carry/half-carry
// out of bit 15/bit 11 respectively — used by ADD HL,ss.
func Add16(a, b uint16) (result uint16, carry, halfCarry bool) {
	sum := uint32(a) + uint32(b)
	halfCarry = (a&0x0fff)+(b&0x0fff) > 0x0fff
	return uint16(sum), sum > 0xffff, halfCarry
}

// addSignedToSP computes sp+e (e sign-extended) the way ADD SP,e and LDHL
// SP,e both do: the result is a genuine signed 16-bit add, but CY/H are
// taken from an 8-bit unsigned add of the low byte of sp with the raw byte
// of e — not from the 16-bit add itself.
func addSignedToSP(sp uint16, e int8) (result uint16, carry, halfCarry bool) {
	ue := uint16(byte(e))
	halfCarry = (sp&0x000f)+(ue&0x000f) > 0x000f
	carry = (sp&0x00ff)+ue > 0x00ff
	result = uint16(int32(sp) + int32(e))
	return result, carry, halfCarry
}

// addToA adds value (with optional carry-in) to A, setting Z/N/H/CY.
func (c *Cpu) addToA(value byte, withCarry bool) {
	carryIn := withCarry && c.Carry()
	result, carry, halfCarry := Add(c.A, value, carryIn)
	c.A = result
	c.SetCarry(carry)
	c.SetHalfCarry(halfCarry)
	c.SetNegative(false)
	c.SetZero(result == 0)
}

// subtractFromA subtracts value (with optional borrow-in) from A, setting
// Z/N/H/CY.
func (c *Cpu) subtractFromA(value byte, withCarry bool) {
	borrowIn := withCarry && c.Carry()
	result, borrow, halfBorrow := Sub(c.A, value, borrowIn)
	c.A = result
	c.SetCarry(borrow)
	c.SetHalfCarry(halfBorrow)
	c.SetNegative(true)
	c.SetZero(result == 0)
}

// compareWithA behaves like subtractFromA but discards the result, keeping
// only the flags (CP).
func (c *Cpu) compareWithA(value byte) {
	a := c.A
	c.subtractFromA(value, false)
	c.A = a
}

func (c *Cpu) bitwiseAndWithA(value byte) {
	c.A &= value
	c.SetCarry(false)
	c.SetHalfCarry(true)
	c.SetNegative(false)
	c.SetZero(c.A == 0)
}

func (c *Cpu) bitwiseOrWithA(value byte) {
	c.A |= value
	c.SetCarry(false)
	c.SetHalfCarry(false)
	c.SetNegative(false)
	c.SetZero(c.A == 0)
}

func (c *Cpu) bitwiseXorWithA(value byte) {
	c.A ^= value
	c.SetCarry(false)
	c.SetHalfCarry(false)
	c.SetNegative(false)
	c.SetZero(c.A == 0)
}

// push writes a 16-bit value onto the stack, high byte first, and decrements
// SP by 2.
func (c *Cpu) push(value uint16) error {
	high, low := mask.SplitWord(value)
	if err := c.Write(c.SP-1, high); err != nil {
		return err
	}
	if err := c.Write(c.SP-2, low); err != nil {
		return err
	}
	c.SP -= 2
	return nil
}

// pop reads a 16-bit value off the stack and increments SP by 2.
func (c *Cpu) pop() (uint16, error) {
	low, err := c.Read(c.SP)
	if err != nil {
		return 0, err
	}
	high, err := c.Read(c.SP + 1)
	if err != nil {
		return 0, err
	}
	c.SP += 2
	return mask.Word(high, low), nil
}

// Step runs one fetch-decode-execute cycle: it reads the opcode at PC,
// advances PC past it, looks the opcode up in the prefixed or unprefixed
// dispatch table depending on the prefix latch, and runs the instruction
// body. In Halt, Step performs no decode but still consumes one cycle; in
// Stop, Step is a true no-op. The embedder is expected to move the Cpu back
// to Run on interrupt.
func (c *Cpu) Step() error {
	if c.Mode == Stop {
		return nil
	}
	if c.Mode == Halt {
		c.chargeInternalCycle()
		return nil
	}

	opcode, err := c.Read(c.PC)
	if err != nil {
		return err
	}
	c.PC++

	prefixed := c.prefixed
	c.prefixed = false

	table := unprefixedTable
	if prefixed {
		table = prefixedTable
	}

	inst := table[opcode]
	if inst == nil {
		return &DecodeError{Prefixed: prefixed, Opcode: opcode}
	}

	c.jumped = false
	return inst.Op(c, opcode)
}

// Cycles reports the number of bus reads/writes and internal cycles charged
// since the Cpu was constructed. Embedders that need per-Step deltas should
// snapshot this before and after calling Step.
func (c *Cpu) Cycles() int { return c.cyclesProcessed }
