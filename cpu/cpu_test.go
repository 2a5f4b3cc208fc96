package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbcore/mem"
)

func newTestCpu() *Cpu {
	return New(mem.NewDefaultBus())
}

func TestRegisterPairReadWrite(t *testing.T) {
	c := newTestCpu()
	c.SetPair(PairBC, 0x1234)
	assert.Equal(t, byte(0x12), c.B)
	assert.Equal(t, byte(0x34), c.C)
	assert.Equal(t, uint16(0x1234), c.Pair(PairBC))

	c.SetPair(PairSP, 0xfffe)
	assert.Equal(t, uint16(0xfffe), c.SP)
}

func TestStackValueAFForcesLowNibbleZero(t *testing.T) {
	c := newTestCpu()
	c.A = 0xab
	c.f = 0xff // directly corrupt the low nibble of f

	assert.Equal(t, byte(0xf0), c.F()) // F() masks the low nibble on read
	assert.Equal(t, uint16(0xabf0), c.StackValue(StackAF))

	c.SetStackValue(StackAF, 0x1234)
	assert.Equal(t, byte(0x12), c.A)
	assert.Equal(t, byte(0x30), c.f) // low nibble of 0x34 forced to 0
}

func TestAddProducesCarryAndHalfCarry(t *testing.T) {
	result, carry, halfCarry := Add(0xf0, 0x10, false)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, carry)
	assert.False(t, halfCarry)

	result, carry, halfCarry = Add(0x0f, 0x01, false)
	assert.Equal(t, byte(0x10), result)
	assert.False(t, carry)
	assert.True(t, halfCarry)
}

func TestSubProducesBorrowAndHalfBorrow(t *testing.T) {
	result, borrow, halfBorrow := Sub(0xe0, 0xf0, false)
	assert.Equal(t, byte(0xf0), result)
	assert.True(t, borrow)
	assert.False(t, halfBorrow)

	result, borrow, halfBorrow = Sub(0x1e, 0x0f, false)
	assert.Equal(t, byte(0x0f), result)
	assert.False(t, borrow)
	assert.True(t, halfBorrow)
}

func TestAddToASetsFlags(t *testing.T) {
	c := newTestCpu()
	c.A = 0x3a
	c.addToA(0xc6, false)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Zero())
	assert.False(t, c.Negative())
	assert.True(t, c.HalfCarry())
	assert.True(t, c.Carry())
}

func TestSubtractFromASetsNegative(t *testing.T) {
	c := newTestCpu()
	c.A = 0x3e
	c.subtractFromA(0x3e, false)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Zero())
	assert.True(t, c.Negative())
	assert.False(t, c.Carry())
}

func TestCompareWithALeavesARegisterUnchanged(t *testing.T) {
	c := newTestCpu()
	c.A = 0x10
	c.compareWithA(0x10)
	assert.Equal(t, byte(0x10), c.A)
	assert.True(t, c.Zero())
}

func TestBitwiseAndSetsHalfCarry(t *testing.T) {
	c := newTestCpu()
	c.A = 0xff
	c.bitwiseAndWithA(0x0f)
	assert.Equal(t, byte(0x0f), c.A)
	assert.False(t, c.Carry())
	assert.True(t, c.HalfCarry())
}

func TestBitwiseOrAndXorClearHalfCarry(t *testing.T) {
	c := newTestCpu()
	c.A = 0xf0
	c.bitwiseOrWithA(0x0f)
	assert.Equal(t, byte(0xff), c.A)
	assert.False(t, c.HalfCarry())

	c.A = 0xff
	c.bitwiseXorWithA(0xff)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Zero())
}

func TestPushAndPopRoundTrip(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xfffe
	assert.NoError(t, c.push(0xbeef))
	assert.Equal(t, uint16(0xfffc), c.SP)

	value, err := c.pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xbeef), value)
	assert.Equal(t, uint16(0xfffe), c.SP)
}

func TestJumpRelativeToHandlesNegativeOffset(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x0100
	c.JumpRelativeTo(-2)
	assert.Equal(t, uint16(0x00fe), c.PC)
	assert.True(t, c.jumped)
}

func TestJumpRelativeToHandlesPositiveOffset(t *testing.T) {
	c := newTestCpu()
	c.PC = 0x0100
	c.JumpRelativeTo(10)
	assert.Equal(t, uint16(0x010a), c.PC)
}

func TestSetProgramCounterChargesOneCycle(t *testing.T) {
	c := newTestCpu()
	before := c.Cycles()
	c.SetProgramCounter(0x1000)
	assert.Equal(t, before+1, c.Cycles())
	assert.Equal(t, uint16(0x1000), c.PC)
}

func TestStepNOP(t *testing.T) {
	c := newTestCpu()
	c.Bus.Write(0xc000, 0x00) // NOP
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0xc001), c.PC)
}

func TestStepLoadRegisterImmediate(t *testing.T) {
	c := newTestCpu()
	c.Bus.Write(0xc000, 0x3e) // LD A,n
	c.Bus.Write(0xc001, 0x42)
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, uint16(0xc002), c.PC)
}

func TestStepAddRegisterToA(t *testing.T) {
	c := newTestCpu()
	c.A = 0x10
	c.B = 0x05
	c.Bus.Write(0xc000, 0x80) // ADD A,B
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x15), c.A)
}

func TestStepIllegalOpcodeReturnsDecodeError(t *testing.T) {
	c := newTestCpu()
	c.Bus.Write(0xc000, 0xd3) // permanently illegal
	c.PC = 0xc000

	err := c.Step()
	assert.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.False(t, decodeErr.Prefixed)
	assert.Equal(t, byte(0xd3), decodeErr.Opcode)
}

func TestStepCBPrefixedInstruction(t *testing.T) {
	c := newTestCpu()
	c.B = 0x80
	c.Bus.Write(0xc000, 0xcb) // PREFIX
	c.Bus.Write(0xc001, 0x00) // RLC B
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.True(t, c.prefixed)
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x01), c.B)
	assert.True(t, c.Carry())
	assert.False(t, c.prefixed)
}

func TestHaltSuspendsStepButChargesOneCycle(t *testing.T) {
	c := newTestCpu()
	c.Mode = Halt
	pc := c.PC
	before := c.Cycles()

	assert.NoError(t, c.Step())
	assert.Equal(t, pc, c.PC)
	assert.Equal(t, before+1, c.Cycles())
}

func TestStopSuspendsStepWithNoCycleCost(t *testing.T) {
	c := newTestCpu()
	c.Mode = Stop
	pc := c.PC
	before := c.Cycles()

	assert.NoError(t, c.Step())
	assert.Equal(t, pc, c.PC)
	assert.Equal(t, before, c.Cycles())
}

func TestFlipCarryClearsNAndH(t *testing.T) {
	c := newTestCpu()
	c.SetNegative(true)
	c.SetHalfCarry(true)
	c.SetCarry(false)
	c.FlipCarry()
	assert.False(t, c.Negative())
	assert.False(t, c.HalfCarry())
	assert.True(t, c.Carry())
}

func TestDAAAfterBCDAddition(t *testing.T) {
	c := newTestCpu()
	// 0x45 + 0x38 in BCD should read as 83, not the raw binary 0x7d.
	c.A = 0x45
	c.addToA(0x38, false)
	assert.Equal(t, byte(0x7d), c.A)

	inst := unprefixedTable[0b00_100_111] // DAA
	assert.NoError(t, inst.Op(c, 0x27))
	assert.Equal(t, byte(0x83), c.A)
	assert.False(t, c.Zero())
}

func TestAddSPOffsetChargesFourCycles(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xfff8
	c.Bus.Write(0xc000, 0xe8) // ADD SP,e
	c.Bus.Write(0xc001, 0x02)
	c.PC = 0xc000

	before := c.Cycles()
	assert.NoError(t, c.Step())
	assert.Equal(t, 4, c.Cycles()-before)
	assert.Equal(t, uint16(0xfffa), c.SP)
}

func TestLDHLChargesThreeCycles(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xfff8
	c.Bus.Write(0xc000, 0xf8) // LDHL SP,e
	c.Bus.Write(0xc001, 0x02)
	c.PC = 0xc000

	before := c.Cycles()
	assert.NoError(t, c.Step())
	assert.Equal(t, 3, c.Cycles()-before)
	assert.Equal(t, uint16(0xfffa), c.HL())
}

func TestCPLSetsNAndH(t *testing.T) {
	c := newTestCpu()
	c.A = 0x35
	inst := unprefixedTable[0b00_101_111] // CPL
	assert.NoError(t, inst.Op(c, 0x2f))
	assert.Equal(t, byte(0xca), c.A)
	assert.True(t, c.Negative())
	assert.True(t, c.HalfCarry())
}

func TestAddSPOffsetWraparound(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xfff8
	c.Bus.Write(0xc000, 0xe8) // ADD SP,e
	c.Bus.Write(0xc001, 0x08)
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0000), c.SP)
	assert.True(t, c.Carry())
	assert.True(t, c.HalfCarry())
	assert.False(t, c.Zero())
	assert.False(t, c.Negative())
}

func TestStopConsumesPaddingByte(t *testing.T) {
	c := newTestCpu()
	c.Bus.Write(0xc000, 0x10) // STOP
	c.Bus.Write(0xc001, 0x00) // padding byte
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0xc002), c.PC)
	assert.Equal(t, Stop, c.Mode)
}

// The following tests implement five of the six end-to-end scenarios named
// in spec.md §8; the DAA scenario is TestDAAAfterBCDAddition above. Programs
// are placed in work RAM, since the default bus leaves cartridge ROM
// unmapped.

func TestScenarioRegisterToRegisterLoad(t *testing.T) {
	c := newTestCpu()
	c.A = 0x00
	c.B = 0x42
	c.Bus.Write(0xc000, 0x78) // LD A,B
	c.PC = 0xc000
	flagsBefore := c.F()

	before := c.Cycles()
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, byte(0x42), c.B)
	assert.Equal(t, 1, c.Cycles()-before)
	assert.Equal(t, uint16(0xc001), c.PC)
	assert.Equal(t, flagsBefore, c.F())
}

func TestScenarioADCWithIncomingCarry(t *testing.T) {
	c := newTestCpu()
	c.A = 0x0f
	c.SetCarry(true)
	c.Bus.Write(0xc000, 0xce) // ADC A,n
	c.Bus.Write(0xc001, 0x01)
	c.PC = 0xc000

	before := c.Cycles()
	assert.NoError(t, c.Step())
	assert.Equal(t, byte(0x11), c.A)
	assert.False(t, c.Zero())
	assert.False(t, c.Negative())
	assert.True(t, c.HalfCarry())
	assert.False(t, c.Carry())
	assert.Equal(t, 2, c.Cycles()-before)
}

func TestScenarioJRNZNotTaken(t *testing.T) {
	c := newTestCpu()
	c.SetZero(true)
	c.Bus.Write(0xc100, 0x20) // JR NZ,e
	c.Bus.Write(0xc101, 0x05)
	c.PC = 0xc100

	before := c.Cycles()
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0xc102), c.PC)
	assert.Equal(t, 2, c.Cycles()-before)
}

func TestScenarioCallThenRet(t *testing.T) {
	c := newTestCpu()
	c.SP = 0xfffe
	c.PC = 0xc150
	c.Bus.Write(0xc150, 0xcd) // CALL nn
	c.Bus.Write(0xc151, 0x00)
	c.Bus.Write(0xc152, 0xc2)
	c.Bus.Write(0xc200, 0xc9) // RET

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0xc200), c.PC)
	assert.Equal(t, uint16(0xfffc), c.SP)
	low, err := c.Bus.Read(0xfffc)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x53), low)
	high, err := c.Bus.Read(0xfffd)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xc1), high)

	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(0xc153), c.PC)
	assert.Equal(t, uint16(0xfffe), c.SP)
}

func TestScenarioBitSevenOfH(t *testing.T) {
	c := newTestCpu()
	c.H = 0x80
	c.SetCarry(true)
	c.Bus.Write(0xc000, 0xcb) // PREFIX
	c.Bus.Write(0xc001, 0x7c) // BIT 7,H
	c.PC = 0xc000

	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.False(t, c.Zero())
	assert.False(t, c.Negative())
	assert.True(t, c.HalfCarry())
	assert.True(t, c.Carry())
}
