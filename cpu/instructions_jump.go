package cpu

// jumpInstructions covers JP/JR in their unconditional, conditional, and
// (HL) forms.
var jumpInstructions = []Instruction{
	{
		Name:    "JP (HL)",
		Pattern: "11 101 001",
		Op: func(c *Cpu, _ byte) error {
			// JP (HL) is the one jump that does not cost the extra internal
			// cycle: it just moves PC, it doesn't compute a destination.
			c.PC = c.HL()
			return nil
		},
	},
	{
		Name:    "JR e",
		Pattern: "00 011 000",
		Op: func(c *Cpu, _ byte) error {
			e, err := c.immediateE()
			if err != nil {
				return err
			}
			c.JumpRelativeTo(e)
			return nil
		},
	},
	{
		Name:    "JR cc,e",
		Pattern: "00 1cc 000",
		Op: func(c *Cpu, opcode byte) error {
			cond := extractCondition(opcode, 3)
			e, err := c.immediateE()
			if err != nil {
				return err
			}
			if c.checkCondition(cond) {
				c.JumpRelativeTo(e)
			}
			return nil
		},
	},
	{
		Name:    "JP nn",
		Pattern: "11 000 011",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			c.JumpTo(nn)
			return nil
		},
	},
	{
		Name:    "JP cc,nn",
		Pattern: "11 0cc 010",
		Op: func(c *Cpu, opcode byte) error {
			cond := extractCondition(opcode, 3)
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			if c.checkCondition(cond) {
				c.JumpTo(nn)
			}
			return nil
		},
	},
}
