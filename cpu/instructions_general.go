package cpu

// generalInstructions covers the miscellaneous, operand-free instructions:
// NOP, CPL, DAA, DI, EI, CCF, SCF, HALT, STOP, and the CB prefix itself.
var generalInstructions = []Instruction{
	{
		Name:    "NOP",
		Pattern: "00 000 000",
		Op:      func(c *Cpu, _ byte) error { return nil },
	},
	{
		Name:    "CPL",
		Pattern: "00 101 111",
		Op: func(c *Cpu, _ byte) error {
			c.A = ^c.A
			c.SetNegative(true)
			c.SetHalfCarry(true)
			return nil
		},
	},
	{
		// DAA adjusts A back to valid BCD after an 8-bit ADD/ADC/SUB/SBC,
		// using the carry/half-carry the preceding instruction left behind.
		Name:    "DAA",
		Pattern: "00 100 111",
		Op: func(c *Cpu, _ byte) error {
			a := c.A
			n := c.Negative()
			var offset byte
			carry := c.Carry()

			if (!n && a&0x0f > 0x09) || c.HalfCarry() {
				offset |= 0x06
			}
			if (!n && a > 0x99) || carry {
				offset |= 0x60
				carry = true
			}

			if n {
				a -= offset
			} else {
				a += offset
			}

			c.A = a
			c.SetCarry(carry)
			c.SetHalfCarry(false)
			c.SetZero(a == 0)
			return nil
		},
	},
	{
		Name:    "DI",
		Pattern: "11 110 011",
		Op: func(c *Cpu, _ byte) error {
			c.IME = false
			return nil
		},
	},
	{
		// EI takes effect immediately: IME is set true in the same step
		// that executes it, rather than after the following instruction.
		Name:    "EI",
		Pattern: "11 111 011",
		Op: func(c *Cpu, _ byte) error {
			c.IME = true
			return nil
		},
	},
	{
		Name:    "CCF",
		Pattern: "00 111 111",
		Op: func(c *Cpu, _ byte) error {
			c.FlipCarry()
			return nil
		},
	},
	{
		Name:    "SCF",
		Pattern: "00 110 111",
		Op: func(c *Cpu, _ byte) error {
			c.SetNegative(false)
			c.SetHalfCarry(false)
			c.SetCarry(true)
			return nil
		},
	},
	{
		Name:    "HALT",
		Pattern: "01 110 110",
		Op: func(c *Cpu, _ byte) error {
			c.Mode = Halt
			return nil
		},
	},
	{
		Name:    "STOP",
		Pattern: "00 010 000",
		Op: func(c *Cpu, _ byte) error {
			// STOP is a 2-byte encoding; the second byte is always 0x00
			// padding, but real hardware still fetches it, so PC must
			// advance past it like any other operand byte.
			if _, err := c.immediateN(); err != nil {
				return err
			}
			c.Mode = Stop
			return nil
		},
	},
	{
		Name:    "PREFIX",
		Pattern: "11 001 011",
		Op: func(c *Cpu, _ byte) error {
			c.prefixed = true
			return nil
		},
	},
}
