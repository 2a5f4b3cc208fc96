package mem

// CatchAll is the default component installed before any region-specific
// overlay. It claims the entire address space and refuses every access,
// so anything not subsequently shadowed by a real component surfaces as
// BusError{Kind: Unmapped} rather than silently reading zero.
type CatchAll struct{}

func NewCatchAll() *CatchAll { return &CatchAll{} }

func (c *CatchAll) MappedLocations() []uint16 {
	locs := make([]uint16, 0, 65536)
	for addr := 0; addr <= 0xffff; addr++ {
		locs = append(locs, uint16(addr))
	}
	return locs
}

func (c *CatchAll) Read(addr uint16) (byte, error) {
	return 0, &BusError{Kind: Unmapped, Addr: addr}
}

func (c *CatchAll) Write(addr uint16, value byte) error {
	return &BusError{Kind: Unmapped, Addr: addr, Value: value}
}

const (
	workRAMStart = 0xc000
	workRAMEnd   = 0xdfff
	echoRAMStart = 0xe000
	echoRAMEnd   = 0xfdff
)

// WorkRAM serves both the work-RAM region (0xC000-0xDFFF) and its echo
// (0xE000-0xFDFF) out of a single backing slice, so a write through either
// range is observable through the other — true aliasing, not two
// independently zero-filled stores.
type WorkRAM struct {
	data [workRAMEnd - workRAMStart + 1]byte
}

func NewWorkRAM() *WorkRAM { return &WorkRAM{} }

func (w *WorkRAM) MappedLocations() []uint16 {
	locs := make([]uint16, 0, (workRAMEnd-workRAMStart+1)+(echoRAMEnd-echoRAMStart+1))
	for addr := workRAMStart; addr <= workRAMEnd; addr++ {
		locs = append(locs, uint16(addr))
	}
	for addr := echoRAMStart; addr <= echoRAMEnd; addr++ {
		locs = append(locs, uint16(addr))
	}
	return locs
}

func (w *WorkRAM) index(addr uint16) int {
	if addr >= echoRAMStart {
		return int(addr - echoRAMStart)
	}
	return int(addr - workRAMStart)
}

func (w *WorkRAM) Read(addr uint16) (byte, error) {
	return w.data[w.index(addr)], nil
}

func (w *WorkRAM) Write(addr uint16, value byte) error {
	w.data[w.index(addr)] = value
	return nil
}

const (
	highRAMStart = 0xff80
	highRAMEnd   = 0xfffe
)

// HighRAM is the stack/high-RAM area the core owns directly: 0xFF80-0xFFFE.
// (0xFFFF, the IE register, is not part of this range — it belongs to the
// external interrupt controller.)
type HighRAM struct {
	data [highRAMEnd - highRAMStart + 1]byte
}

func NewHighRAM() *HighRAM { return &HighRAM{} }

func (h *HighRAM) MappedLocations() []uint16 {
	locs := make([]uint16, 0, highRAMEnd-highRAMStart+1)
	for addr := highRAMStart; addr <= highRAMEnd; addr++ {
		locs = append(locs, uint16(addr))
	}
	return locs
}

func (h *HighRAM) Read(addr uint16) (byte, error) {
	return h.data[addr-highRAMStart], nil
}

func (h *HighRAM) Write(addr uint16, value byte) error {
	h.data[addr-highRAMStart] = value
	return nil
}

const (
	sbAddress = 0xff01
	scAddress = 0xff02
)

// SerialStub stands in for the serial-transfer hardware (SB/SC), which is
// out of this core's scope; it just holds whatever was last written.
type SerialStub struct {
	sb, sc byte
}

func NewSerialStub() *SerialStub { return &SerialStub{} }

func (s *SerialStub) MappedLocations() []uint16 {
	return []uint16{sbAddress, scAddress}
}

func (s *SerialStub) Read(addr uint16) (byte, error) {
	if addr == sbAddress {
		return s.sb, nil
	}
	return s.sc, nil
}

func (s *SerialStub) Write(addr uint16, value byte) error {
	if addr == sbAddress {
		s.sb = value
	} else {
		s.sc = value
	}
	return nil
}

const (
	soundRegsStart = 0xff10
	soundRegsEnd   = 0xff26
	waveRAMStart   = 0xff30
	waveRAMEnd     = 0xff3f
)

// SoundStub stands in for the APU's register file (NR10..NR52) and wave
// RAM; it is a plain read/write store with no synthesis behavior, since
// audio is out of this core's scope.
type SoundStub struct {
	regs map[uint16]byte
}

func NewSoundStub() *SoundStub {
	regs := make(map[uint16]byte, (soundRegsEnd-soundRegsStart+1)+(waveRAMEnd-waveRAMStart+1))
	for addr := soundRegsStart; addr <= soundRegsEnd; addr++ {
		regs[uint16(addr)] = 0
	}
	for addr := waveRAMStart; addr <= waveRAMEnd; addr++ {
		regs[uint16(addr)] = 0
	}
	return &SoundStub{regs: regs}
}

func (s *SoundStub) MappedLocations() []uint16 {
	locs := make([]uint16, 0, len(s.regs))
	for addr := range s.regs {
		locs = append(locs, addr)
	}
	return locs
}

func (s *SoundStub) Read(addr uint16) (byte, error) {
	v, ok := s.regs[addr]
	if !ok {
		return 0, &BusError{Kind: ReadRefused, Addr: addr, Reason: "not a sound register"}
	}
	return v, nil
}

func (s *SoundStub) Write(addr uint16, value byte) error {
	if _, ok := s.regs[addr]; !ok {
		return &BusError{Kind: WriteRefused, Addr: addr, Value: value, Reason: "not a sound register"}
	}
	s.regs[addr] = value
	return nil
}

const (
	unusableStart = 0xfea0
	unusableEnd   = 0xfeff
)

// Unusable covers 0xFEA0-0xFEFF: reads always yield 0, writes are silently
// discarded. Real hardware's behavior here varies by revision; this core
// takes the simplest well-defined stance.
type Unusable struct{}

func NewUnusable() *Unusable { return &Unusable{} }

func (u *Unusable) MappedLocations() []uint16 {
	locs := make([]uint16, 0, unusableEnd-unusableStart+1)
	for addr := unusableStart; addr <= unusableEnd; addr++ {
		locs = append(locs, uint16(addr))
	}
	return locs
}

func (u *Unusable) Read(addr uint16) (byte, error) { return 0x00, nil }

func (u *Unusable) Write(addr uint16, value byte) error { return nil }
