package cpu

// logicalInstructions covers AND/OR/XOR in their (HL), immediate, and
// register forms.
var logicalInstructions = []Instruction{
	{
		Name:    "AND (HL)",
		Pattern: "10 100 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.bitwiseAndWithA(value)
			return nil
		},
	},
	{
		Name:    "AND n",
		Pattern: "11 100 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.bitwiseAndWithA(value)
			return nil
		},
	},
	{
		Name:    "AND r",
		Pattern: "10 100 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.bitwiseAndWithA(c.Register(r))
			return nil
		},
	},
	{
		Name:    "OR (HL)",
		Pattern: "10 110 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.bitwiseOrWithA(value)
			return nil
		},
	},
	{
		Name:    "OR n",
		Pattern: "11 110 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.bitwiseOrWithA(value)
			return nil
		},
	},
	{
		Name:    "OR r",
		Pattern: "10 110 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.bitwiseOrWithA(c.Register(r))
			return nil
		},
	},
	{
		Name:    "XOR (HL)",
		Pattern: "10 101 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.bitwiseXorWithA(value)
			return nil
		},
	},
	{
		Name:    "XOR n",
		Pattern: "11 101 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.bitwiseXorWithA(value)
			return nil
		},
	},
	{
		Name:    "XOR r",
		Pattern: "10 101 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.bitwiseXorWithA(c.Register(r))
			return nil
		},
	},
}
