package cpu

// callInstructions covers CALL/RET/RETI/RST in their unconditional and
// conditional forms.
var callInstructions = []Instruction{
	{
		Name:    "CALL nn",
		Pattern: "11 001 101",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			if err := c.push(c.PC); err != nil {
				return err
			}
			c.JumpTo(nn)
			return nil
		},
	},
	{
		Name:    "CALL cc,nn",
		Pattern: "11 0cc 100",
		Op: func(c *Cpu, opcode byte) error {
			cond := extractCondition(opcode, 3)
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			if c.checkCondition(cond) {
				if err := c.push(c.PC); err != nil {
					return err
				}
				c.JumpTo(nn)
			}
			return nil
		},
	},
	{
		Name:    "RET",
		Pattern: "11 001 001",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.pop()
			if err != nil {
				return err
			}
			c.JumpTo(nn)
			return nil
		},
	},
	{
		Name:    "RET cc",
		Pattern: "11 0cc 000",
		Op: func(c *Cpu, opcode byte) error {
			cond := extractCondition(opcode, 3)
			if c.checkCondition(cond) {
				nn, err := c.pop()
				if err != nil {
					return err
				}
				c.JumpTo(nn)
			}
			return nil
		},
	},
	{
		Name:    "RETI",
		Pattern: "11 011 001",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.pop()
			if err != nil {
				return err
			}
			c.IME = true
			c.JumpTo(nn)
			return nil
		},
	},
	{
		Name:    "RST t",
		Pattern: "11 ttt 111",
		Op: func(c *Cpu, opcode byte) error {
			page := extractPage(opcode, 3)
			if err := c.push(c.PC); err != nil {
				return err
			}
			c.JumpTo(page)
			return nil
		},
	},
}
