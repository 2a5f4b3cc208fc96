package cpu

// arithmeticInstructions covers ADD/ADC/SUB/SBC/CP/INC/DEC in all their
// register, (HL), immediate, and register-pair forms.
var arithmeticInstructions = []Instruction{
	{
		Name:    "ADD A,(HL)",
		Pattern: "10 000 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.addToA(value, false)
			return nil
		},
	},
	{
		Name:    "ADD SP,e",
		Pattern: "11 101 000",
		Op: func(c *Cpu, _ byte) error {
			e, err := c.immediateE()
			if err != nil {
				return err
			}
			result, carry, halfCarry := addSignedToSP(c.SP, e)
			c.SP = result
			c.SetZero(false)
			c.SetNegative(false)
			c.SetHalfCarry(halfCarry)
			c.SetCarry(carry)
			// Two extra internal cycles beyond opcode+operand fetch: one to
			// add the sign-extended byte, one to propagate the carry into SP.
			c.chargeInternalCycle()
			c.chargeInternalCycle()
			return nil
		},
	},
	{
		Name:    "ADD A,n",
		Pattern: "11 000 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.addToA(value, false)
			return nil
		},
	},
	{
		Name:    "ADD HL,ss",
		Pattern: "00 ss1 001",
		Op: func(c *Cpu, opcode byte) error {
			rp := extractRegisterPair(opcode, 4)
			result, carry, halfCarry := Add16(c.HL(), c.Pair(rp))
			c.SetPair(PairHL, result)
			c.SetNegative(false)
			c.SetHalfCarry(halfCarry)
			c.SetCarry(carry)
			return nil
		},
	},
	{
		Name:    "ADD A,r",
		Pattern: "10 000 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.addToA(c.Register(r), false)
			return nil
		},
	},
	{
		Name:    "ADC A,(HL)",
		Pattern: "10 001 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.addToA(value, true)
			return nil
		},
	},
	{
		Name:    "ADC A,n",
		Pattern: "11 001 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.addToA(value, true)
			return nil
		},
	},
	{
		Name:    "ADC A,r",
		Pattern: "10 001 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.addToA(c.Register(r), true)
			return nil
		},
	},
	{
		Name:    "CP (HL)",
		Pattern: "10 111 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.compareWithA(value)
			return nil
		},
	},
	{
		Name:    "CP n",
		Pattern: "11 111 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.compareWithA(value)
			return nil
		},
	},
	{
		Name:    "CP r",
		Pattern: "10 111 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.compareWithA(c.Register(r))
			return nil
		},
	},
	{
		Name:    "DEC (HL)",
		Pattern: "00 110 101",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			carry := c.Carry()
			value, _, halfBorrow := Sub(value, 1, false)
			if err := c.writeHL(value); err != nil {
				return err
			}
			c.SetNegative(true)
			c.SetHalfCarry(halfBorrow)
			c.SetZero(value == 0)
			c.SetCarry(carry)
			return nil
		},
	},
	{
		Name:    "DEC r",
		Pattern: "00 rrr 101",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 3)
			if err != nil {
				return err
			}
			carry := c.Carry()
			value, _, halfBorrow := Sub(c.Register(r), 1, false)
			c.SetRegister(r, value)
			c.SetNegative(true)
			c.SetHalfCarry(halfBorrow)
			c.SetZero(value == 0)
			c.SetCarry(carry)
			return nil
		},
	},
	{
		Name:    "DEC ss",
		Pattern: "00 ss1 011",
		Op: func(c *Cpu, opcode byte) error {
			rp := extractRegisterPair(opcode, 4)
			c.SetPair(rp, c.Pair(rp)-1)
			return nil
		},
	},
	{
		Name:    "INC (HL)",
		Pattern: "00 110 100",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			carry := c.Carry()
			value, _, halfCarry := Add(value, 1, false)
			if err := c.writeHL(value); err != nil {
				return err
			}
			c.SetNegative(false)
			c.SetHalfCarry(halfCarry)
			c.SetZero(value == 0)
			c.SetCarry(carry)
			return nil
		},
	},
	{
		Name:    "INC r",
		Pattern: "00 rrr 100",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 3)
			if err != nil {
				return err
			}
			carry := c.Carry()
			value, _, halfCarry := Add(c.Register(r), 1, false)
			c.SetRegister(r, value)
			c.SetNegative(false)
			c.SetHalfCarry(halfCarry)
			c.SetZero(value == 0)
			c.SetCarry(carry)
			return nil
		},
	},
	{
		Name:    "INC ss",
		Pattern: "00 ss0 011",
		Op: func(c *Cpu, opcode byte) error {
			rp := extractRegisterPair(opcode, 4)
			c.SetPair(rp, c.Pair(rp)+1)
			return nil
		},
	},
	{
		Name:    "SUB A,(HL)",
		Pattern: "10 010 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.subtractFromA(value, false)
			return nil
		},
	},
	{
		Name:    "SUB A,n",
		Pattern: "11 010 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.subtractFromA(value, false)
			return nil
		},
	},
	{
		Name:    "SUB A,r",
		Pattern: "10 010 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.subtractFromA(c.Register(r), false)
			return nil
		},
	},
	{
		Name:    "SBC A,(HL)",
		Pattern: "10 011 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.subtractFromA(value, true)
			return nil
		},
	},
	{
		Name:    "SBC A,n",
		Pattern: "11 011 110",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.immediateN()
			if err != nil {
				return err
			}
			c.subtractFromA(value, true)
			return nil
		},
	},
	{
		Name:    "SBC A,r",
		Pattern: "10 011 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.subtractFromA(c.Register(r), true)
			return nil
		},
	},
}
