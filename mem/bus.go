// Package mem implements the Game Boy's 64 KiB address space as a bus that
// fans reads and writes out to regional components.
//
// A Bus has no memory of its own beyond the component table; every address
// is owned by exactly one registered Component. Registration order matters:
// later registrations shadow earlier ones at overlapping addresses, which is
// the mechanism used to install specific regions over a catch-all default.
package mem

import "fmt"

// A Component serves reads and writes for the addresses it claims via
// MappedLocations. MappedLocations is called once, at registration time.
type Component interface {
	MappedLocations() []uint16
	Read(addr uint16) (byte, error)
	Write(addr uint16, value byte) error
}

// BusErrorKind distinguishes the three ways a bus access can fail.
type BusErrorKind int

const (
	Unmapped BusErrorKind = iota
	ReadRefused
	WriteRefused
)

// BusError is returned by Bus.Read and Bus.Write, and by the Component
// implementations in this package.
type BusError struct {
	Kind   BusErrorKind
	Addr   uint16
	Value  byte // only meaningful for WriteRefused
	Reason string
}

func (e *BusError) Error() string {
	switch e.Kind {
	case Unmapped:
		return fmt.Sprintf("bus: unmapped address %#04x", e.Addr)
	case ReadRefused:
		return fmt.Sprintf("bus: read refused at %#04x: %s", e.Addr, e.Reason)
	case WriteRefused:
		return fmt.Sprintf("bus: write refused at %#04x <- %#02x: %s", e.Addr, e.Value, e.Reason)
	default:
		return "bus: unknown error"
	}
}

// noComponent marks an address slot with no registered owner yet.
const noComponent = -1

// A Bus is the central object fanning CPU reads/writes out to whichever
// component owns a given address. Components are created at emulator
// construction and live for the Bus's lifetime; there is no unregistration.
type Bus struct {
	components []Component
	table      [65536]int // addr -> index into components, or noComponent
}

// NewBus returns an empty bus with nothing registered. Embedders typically
// call Register with a catch-all component first, then overlay specific
// regions; NewDefaultBus does exactly this for the regions this core owns.
func NewBus() *Bus {
	b := &Bus{}
	for addr := range b.table {
		b.table[addr] = noComponent
	}
	return b
}

// Register appends component to the bus and, for every address in
// component.MappedLocations(), makes it the owner of that address. A later
// Register call claiming the same address shadows an earlier one.
func (b *Bus) Register(component Component) {
	idx := len(b.components)
	b.components = append(b.components, component)
	for _, addr := range component.MappedLocations() {
		b.table[addr] = idx
	}
}

// Read delegates to the component owning addr. An address with no
// registered owner yields BusError{Kind: Unmapped}.
func (b *Bus) Read(addr uint16) (byte, error) {
	idx := b.table[addr]
	if idx == noComponent {
		return 0, &BusError{Kind: Unmapped, Addr: addr}
	}
	return b.components[idx].Read(addr)
}

// Write delegates to the component owning addr. An address with no
// registered owner yields BusError{Kind: Unmapped}.
func (b *Bus) Write(addr uint16, value byte) error {
	idx := b.table[addr]
	if idx == noComponent {
		return &BusError{Kind: Unmapped, Addr: addr}
	}
	return b.components[idx].Write(addr, value)
}

// NewDefaultBus wires up the component set this core assumes to be present
// even without a front-end: a catch-all covering the full address space,
// then overlays for work RAM (with echo RAM true-aliased onto it), the
// stack/high-RAM area, the serial stub, the sound-register stub, and the
// unusable region. VRAM, OAM, cartridge ROM/RAM, and the IE register are
// left to the embedder to register (or to shadow these defaults) — they are
// external collaborators per this core's scope.
func NewDefaultBus() *Bus {
	b := NewBus()
	b.Register(NewCatchAll())
	b.Register(NewWorkRAM())
	b.Register(NewHighRAM())
	b.Register(NewSerialStub())
	b.Register(NewSoundStub())
	b.Register(NewUnusable())
	return b
}
