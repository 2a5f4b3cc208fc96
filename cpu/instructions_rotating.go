package cpu

// setRotationFlags sets the flags common to every rotate/shift: H and N
// always clear, Z from the result. CY is set by the caller before this runs.
func (c *Cpu) setRotationFlags(value byte) {
	c.SetHalfCarry(false)
	c.SetNegative(false)
	c.SetZero(value == 0)
}

// rotateLeft rotates value left by one bit. withCopy selects RLC-style
// rotation (bit 7 copied into both CY and bit 0); otherwise it's RL-style
// (bit 7 into CY, old CY into bit 0).
func (c *Cpu) rotateLeft(value byte, withCopy bool) byte {
	var bit byte
	if withCopy {
		bit7 := value&0x80 != 0
		c.SetCarry(bit7)
		if bit7 {
			bit = 1
		}
	} else {
		if c.Carry() {
			bit = 1
		}
		c.SetCarry(value&0x80 != 0)
	}
	rotated := (value << 1) | bit
	c.setRotationFlags(rotated)
	return rotated
}

// rotateRight rotates value right by one bit. withCopy selects RRC-style
// rotation (bit 0 copied into both CY and bit 7); otherwise it's RR-style
// (bit 0 into CY, old CY into bit 7).
func (c *Cpu) rotateRight(value byte, withCopy bool) byte {
	var bit byte
	if withCopy {
		bit0 := value&0x01 != 0
		c.SetCarry(bit0)
		if bit0 {
			bit = 0x80
		}
	} else {
		if c.Carry() {
			bit = 0x80
		}
		c.SetCarry(value&0x01 != 0)
	}
	rotated := (value >> 1) | bit
	c.setRotationFlags(rotated)
	return rotated
}

func (c *Cpu) shiftLeft(value byte) byte {
	c.SetCarry(value&0x80 != 0)
	shifted := value << 1
	c.setRotationFlags(shifted)
	return shifted
}

func (c *Cpu) shiftRight(value byte, copyBit7 bool) byte {
	bit7 := value & 0x80
	c.SetCarry(value&0x01 != 0)
	shifted := value >> 1
	if copyBit7 {
		shifted |= bit7
	}
	c.setRotationFlags(shifted)
	return shifted
}

func (c *Cpu) swap(value byte) byte {
	swapped := value<<4 | value>>4
	c.SetCarry(false)
	c.setRotationFlags(swapped)
	return swapped
}

// nonPrefixedRotatingInstructions holds the four A-specific, non-CB-prefixed
// rotate forms (RLCA/RLA/RRCA/RRA). These always clear Z, unlike their
// CB-prefixed RLC r / RL r / RRC r / RR r counterparts.
var nonPrefixedRotatingInstructions = []Instruction{
	{
		Name:    "RLCA",
		Pattern: "00 000 111",
		Op: func(c *Cpu, _ byte) error {
			c.A = c.rotateLeft(c.A, true)
			c.SetZero(false)
			return nil
		},
	},
	{
		Name:    "RLA",
		Pattern: "00 010 111",
		Op: func(c *Cpu, _ byte) error {
			c.A = c.rotateLeft(c.A, false)
			c.SetZero(false)
			return nil
		},
	},
	{
		Name:    "RRCA",
		Pattern: "00 001 111",
		Op: func(c *Cpu, _ byte) error {
			c.A = c.rotateRight(c.A, true)
			c.SetZero(false)
			return nil
		},
	},
	{
		Name:    "RRA",
		Pattern: "00 011 111",
		Op: func(c *Cpu, _ byte) error {
			c.A = c.rotateRight(c.A, false)
			c.SetZero(false)
			return nil
		},
	},
}

// prefixedRotatingInstructions holds every CB-prefixed rotate/shift/swap:
// RLC/RL/RRC/RR/SLA/SRA/SRL/SWAP, each in (HL) and register forms.
var prefixedRotatingInstructions = []Instruction{
	{
		Name:    "RLC (HL)",
		Pattern: "00 000 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.rotateLeft(v, true) }),
	},
	{
		Name:    "RL (HL)",
		Pattern: "00 010 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.rotateLeft(v, false) }),
	},
	{
		Name:    "RRC (HL)",
		Pattern: "00 001 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.rotateRight(v, true) }),
	},
	{
		Name:    "RR (HL)",
		Pattern: "00 011 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.rotateRight(v, false) }),
	},
	{
		Name:    "RLC r",
		Pattern: "00 000 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.rotateLeft(v, true) }),
	},
	{
		Name:    "RL r",
		Pattern: "00 010 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.rotateLeft(v, false) }),
	},
	{
		Name:    "RRC r",
		Pattern: "00 001 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.rotateRight(v, true) }),
	},
	{
		Name:    "RR r",
		Pattern: "00 011 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.rotateRight(v, false) }),
	},
	{
		Name:    "SLA (HL)",
		Pattern: "00 100 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.shiftLeft(v) }),
	},
	{
		Name:    "SRA (HL)",
		Pattern: "00 101 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.shiftRight(v, true) }),
	},
	{
		Name:    "SRL (HL)",
		Pattern: "00 111 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.shiftRight(v, false) }),
	},
	{
		Name:    "SLA r",
		Pattern: "00 100 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.shiftLeft(v) }),
	},
	{
		Name:    "SRA r",
		Pattern: "00 101 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.shiftRight(v, true) }),
	},
	{
		Name:    "SRL r",
		Pattern: "00 111 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.shiftRight(v, false) }),
	},
	{
		Name:    "SWAP (HL)",
		Pattern: "00 110 110",
		Op:      hlRotateOp(func(c *Cpu, v byte) byte { return c.swap(v) }),
	},
	{
		Name:    "SWAP r",
		Pattern: "00 110 rrr",
		Op:      regRotateOp(func(c *Cpu, v byte) byte { return c.swap(v) }),
	},
}

// hlRotateOp adapts a value-transforming function (rotate/shift/swap) into
// an Op that reads-modifies-writes the byte at (HL).
func hlRotateOp(transform func(c *Cpu, value byte) byte) Op {
	return func(c *Cpu, _ byte) error {
		value, err := c.readHL()
		if err != nil {
			return err
		}
		return c.writeHL(transform(c, value))
	}
}

// regRotateOp adapts a value-transforming function into an Op that
// reads-modifies-writes the register named by the opcode's rrr field.
func regRotateOp(transform func(c *Cpu, value byte) byte) Op {
	return func(c *Cpu, opcode byte) error {
		r, err := extractRegister(opcode, 0)
		if err != nil {
			return err
		}
		c.SetRegister(r, transform(c, c.Register(r)))
		return nil
	}
}
