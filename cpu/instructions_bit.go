package cpu

// bitInstructions covers BIT/SET/RES in their (HL) and register forms. All
// are CB-prefixed.
var bitInstructions = []Instruction{
	{
		Name:    "BIT b,(HL)",
		Pattern: "01 bbb 110",
		Op: func(c *Cpu, opcode byte) error {
			bit := extractBit(opcode, 3)
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.testBit(value, bit)
			return nil
		},
	},
	{
		Name:    "BIT b,r",
		Pattern: "01 bbb rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			bit := extractBit(opcode, 3)
			c.testBit(c.Register(r), bit)
			return nil
		},
	},
	{
		Name:    "RES b,(HL)",
		Pattern: "10 bbb 110",
		Op: func(c *Cpu, opcode byte) error {
			bit := extractBit(opcode, 3)
			value, err := c.readHL()
			if err != nil {
				return err
			}
			return c.writeHL(clearBit(value, bit))
		},
	},
	{
		Name:    "RES b,r",
		Pattern: "10 bbb rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			bit := extractBit(opcode, 3)
			c.SetRegister(r, clearBit(c.Register(r), bit))
			return nil
		},
	},
	{
		Name:    "SET b,(HL)",
		Pattern: "11 bbb 110",
		Op: func(c *Cpu, opcode byte) error {
			bit := extractBit(opcode, 3)
			value, err := c.readHL()
			if err != nil {
				return err
			}
			return c.writeHL(setBit(value, bit))
		},
	},
	{
		Name:    "SET b,r",
		Pattern: "11 bbb rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			bit := extractBit(opcode, 3)
			c.SetRegister(r, setBit(c.Register(r), bit))
			return nil
		},
	},
}

// testBit sets Z to the complement of bit bit of value, H always, N never
// (BIT b,r / BIT b,(HL)). CY is left untouched.
func (c *Cpu) testBit(value byte, bit uint) {
	c.SetZero(value&(1<<bit) == 0)
	c.SetHalfCarry(true)
	c.SetNegative(false)
}

func clearBit(value byte, bit uint) byte { return value &^ (1 << bit) }

func setBit(value byte, bit uint) byte { return value | (1 << bit) }
