package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatchAllUnmapped(t *testing.T) {
	b := NewBus()
	b.Register(NewCatchAll())

	_, err := b.Read(0x1234)
	assert.Error(t, err)
	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, Unmapped, busErr.Kind)

	err = b.Write(0x1234, 0x42)
	assert.Error(t, err)
}

func TestUnregisteredAddressIsUnmapped(t *testing.T) {
	b := NewBus()
	_, err := b.Read(0x0000)
	assert.Error(t, err)
}

func TestLaterRegistrationShadowsEarlier(t *testing.T) {
	b := NewBus()
	b.Register(NewCatchAll())
	b.Register(NewHighRAM())

	assert.NoError(t, b.Write(0xff80, 0x99))
	v, err := b.Read(0xff80)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x99), v)

	// an address the overlay doesn't claim still goes to the catch-all
	_, err = b.Read(0x0000)
	assert.Error(t, err)
}

func TestEchoRAMAliasesWorkRAM(t *testing.T) {
	b := NewDefaultBus()

	for k := uint16(0); k < 0x1e00; k++ {
		err := b.Write(0xc000+k, byte(k))
		assert.NoError(t, err)
		v, err := b.Read(0xe000 + k)
		assert.NoError(t, err)
		assert.Equal(t, byte(k), v, "echo mismatch at offset %#04x", k)
	}

	// and the reverse direction
	assert.NoError(t, b.Write(0xe010, 0xab))
	v, err := b.Read(0xc010)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xab), v)
}

func TestUnusableRegion(t *testing.T) {
	b := NewDefaultBus()

	assert.NoError(t, b.Write(0xfea0, 0xff))
	v, err := b.Read(0xfea0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x00), v)
}

func TestSerialStub(t *testing.T) {
	b := NewDefaultBus()

	assert.NoError(t, b.Write(0xff01, 0x61))
	v, err := b.Read(0xff01)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x61), v)
}

func TestSoundStubCoversWaveRAM(t *testing.T) {
	b := NewDefaultBus()

	assert.NoError(t, b.Write(0xff30, 0x0f))
	v, err := b.Read(0xff30)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x0f), v)

	assert.NoError(t, b.Write(0xff26, 0x80))
	v, err = b.Read(0xff26)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), v)
}

func TestHighRAMRoundTrip(t *testing.T) {
	b := NewDefaultBus()

	assert.NoError(t, b.Write(0xfffe, 0x7f))
	v, err := b.Read(0xfffe)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x7f), v)
}
