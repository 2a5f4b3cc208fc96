package cpu

import "gbcore/mask"

// loadingInstructions covers every 8-bit and 16-bit LD form, LDHL, and
// PUSH/POP.
var loadingInstructions = []Instruction{
	{
		Name:    "LD (BC),A",
		Pattern: "00 000 010",
		Op: func(c *Cpu, _ byte) error {
			return c.Write(c.Pair(PairBC), c.A)
		},
	},
	{
		Name:    "LD (C),A",
		Pattern: "11 100 010",
		Op: func(c *Cpu, _ byte) error {
			return c.Write(0xff00+uint16(c.C), c.A)
		},
	},
	{
		Name:    "LD (DE),A",
		Pattern: "00 010 010",
		Op: func(c *Cpu, _ byte) error {
			return c.Write(c.Pair(PairDE), c.A)
		},
	},
	{
		Name:    "LD (HL-),A",
		Pattern: "00 110 010",
		Op: func(c *Cpu, _ byte) error {
			hl := c.HL()
			if err := c.Write(hl, c.A); err != nil {
				return err
			}
			c.SetPair(PairHL, hl-1)
			return nil
		},
	},
	{
		Name:    "LD (HL+),A",
		Pattern: "00 100 010",
		Op: func(c *Cpu, _ byte) error {
			hl := c.HL()
			if err := c.Write(hl, c.A); err != nil {
				return err
			}
			c.SetPair(PairHL, hl+1)
			return nil
		},
	},
	{
		Name:    "LD (n),A",
		Pattern: "11 100 000",
		Op: func(c *Cpu, _ byte) error {
			n, err := c.immediateN()
			if err != nil {
				return err
			}
			return c.Write(0xff00+uint16(n), c.A)
		},
	},
	{
		Name:    "LD (nn),A",
		Pattern: "11 101 010",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			return c.Write(nn, c.A)
		},
	},
	{
		Name:    "LD A,(BC)",
		Pattern: "00 001 010",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.Read(c.Pair(PairBC))
			if err != nil {
				return err
			}
			c.A = value
			return nil
		},
	},
	{
		Name:    "LD A,(C)",
		Pattern: "11 110 010",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.Read(0xff00 + uint16(c.C))
			if err != nil {
				return err
			}
			c.A = value
			return nil
		},
	},
	{
		Name:    "LD A,(DE)",
		Pattern: "00 011 010",
		Op: func(c *Cpu, _ byte) error {
			value, err := c.Read(c.Pair(PairDE))
			if err != nil {
				return err
			}
			c.A = value
			return nil
		},
	},
	{
		Name:    "LD SP,HL",
		Pattern: "11 111 001",
		Op: func(c *Cpu, _ byte) error {
			c.SP = c.HL()
			return nil
		},
	},
	{
		Name:    "LD A,(HL-)",
		Pattern: "00 111 010",
		Op: func(c *Cpu, _ byte) error {
			hl := c.HL()
			value, err := c.Read(hl)
			if err != nil {
				return err
			}
			c.A = value
			c.SetPair(PairHL, hl-1)
			return nil
		},
	},
	{
		Name:    "LD A,(HL+)",
		Pattern: "00 101 010",
		Op: func(c *Cpu, _ byte) error {
			hl := c.HL()
			value, err := c.Read(hl)
			if err != nil {
				return err
			}
			c.A = value
			c.SetPair(PairHL, hl+1)
			return nil
		},
	},
	{
		Name:    "LD r,(HL)",
		Pattern: "01 rrr 110",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 3)
			if err != nil {
				return err
			}
			value, err := c.readHL()
			if err != nil {
				return err
			}
			c.SetRegister(r, value)
			return nil
		},
	},
	{
		Name:    "LD (HL),n",
		Pattern: "00 110 110",
		Op: func(c *Cpu, _ byte) error {
			n, err := c.immediateN()
			if err != nil {
				return err
			}
			return c.writeHL(n)
		},
	},
	{
		Name:    "LD r,n",
		Pattern: "00 rrr 110",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 3)
			if err != nil {
				return err
			}
			n, err := c.immediateN()
			if err != nil {
				return err
			}
			c.SetRegister(r, n)
			return nil
		},
	},
	{
		Name:    "LD A,(n)",
		Pattern: "11 110 000",
		Op: func(c *Cpu, _ byte) error {
			n, err := c.immediateN()
			if err != nil {
				return err
			}
			value, err := c.Read(0xff00 + uint16(n))
			if err != nil {
				return err
			}
			c.A = value
			return nil
		},
	},
	{
		Name:    "LD dd,nn",
		Pattern: "00 ss0 001",
		Op: func(c *Cpu, opcode byte) error {
			rp := extractRegisterPair(opcode, 4)
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			c.SetPair(rp, nn)
			return nil
		},
	},
	{
		Name:    "LD A,(nn)",
		Pattern: "11 111 010",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			value, err := c.Read(nn)
			if err != nil {
				return err
			}
			c.A = value
			return nil
		},
	},
	{
		Name:    "LD (HL),r",
		Pattern: "01 110 rrr",
		Op: func(c *Cpu, opcode byte) error {
			r, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			return c.writeHL(c.Register(r))
		},
	},
	{
		Name:    "LD r,r",
		Pattern: "01 rrr qqq",
		Op: func(c *Cpu, opcode byte) error {
			dst, err := extractRegister(opcode, 3)
			if err != nil {
				return err
			}
			src, err := extractRegister(opcode, 0)
			if err != nil {
				return err
			}
			c.SetRegister(dst, c.Register(src))
			return nil
		},
	},
	{
		// LDHL SP,e loads SP+e into HL, with flags computed the same way
		// ADD SP,e computes them.
		Name:    "LDHL SP,e",
		Pattern: "11 111 000",
		Op: func(c *Cpu, _ byte) error {
			e, err := c.immediateE()
			if err != nil {
				return err
			}
			result, carry, halfCarry := addSignedToSP(c.SP, e)
			c.SetPair(PairHL, result)
			c.SetZero(false)
			c.SetNegative(false)
			c.SetHalfCarry(halfCarry)
			c.SetCarry(carry)
			// One extra internal cycle beyond opcode+operand fetch, to add
			// the sign-extended byte; unlike ADD SP,e there's no second
			// cycle to propagate the result back into SP itself.
			c.chargeInternalCycle()
			return nil
		},
	},
	{
		Name:    "LD (nn),SP",
		Pattern: "00 001 000",
		Op: func(c *Cpu, _ byte) error {
			nn, err := c.immediateNN()
			if err != nil {
				return err
			}
			high, low := mask.SplitWord(c.SP)
			if err := c.Write(nn, low); err != nil {
				return err
			}
			return c.Write(nn+1, high)
		},
	},
	{
		Name:    "POP qq",
		Pattern: "11 ss0 001",
		Op: func(c *Cpu, opcode byte) error {
			sp := extractStackPair(opcode, 4)
			value, err := c.pop()
			if err != nil {
				return err
			}
			c.SetStackValue(sp, value)
			return nil
		},
	},
	{
		Name:    "PUSH qq",
		Pattern: "11 ss0 101",
		Op: func(c *Cpu, opcode byte) error {
			sp := extractStackPair(opcode, 4)
			return c.push(c.StackValue(sp))
		},
	},
}
