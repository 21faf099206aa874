// Package mapper provides the banked address space of a Game Boy cartridge image.
package mapper

import (
	"encoding/binary"
	"fmt"

	"github.com/retroenv/gbrandomizer/internal/errs"
)

const (
	// BankSize is the size of a single switchable ROM bank.
	BankSize = 0x4000

	// WindowStart is the first cartridge address of the switchable bank window.
	WindowStart = 0x4000
	// WindowEnd is the exclusive upper bound of the switchable bank window.
	WindowEnd = 0x8000
)

// ToAbsolute converts a bank and cartridge address pair to an offset into the
// flat image. Bank 0 is mapped linearly, all other banks are mapped through the
// switchable window. The address has to be validated with InWindow by the
// caller for banks other than 0.
func ToAbsolute(bank int, address uint16) int {
	if bank == 0 {
		return int(address)
	}
	return bank*BankSize + (int(address) - WindowStart)
}

// InWindow returns whether the cartridge address references the switchable
// bank window.
func InWindow(address uint16) bool {
	return address >= WindowStart && address < WindowEnd
}

// Mapper gives banked access to a mutable image.
type Mapper struct {
	image []byte
	banks []Bank
}

// New returns a mapper for the image. The image length has to be a non zero
// multiple of the bank size.
func New(image []byte) (*Mapper, error) {
	if len(image) == 0 || len(image)%BankSize != 0 {
		return nil, fmt.Errorf("%w: image size %d is not a multiple of bank size %d",
			errs.ErrUnsupportedImage, len(image), BankSize)
	}

	m := &Mapper{
		image: image,
	}
	m.initializeBanks()
	return m, nil
}

// Image returns the underlying image.
func (m *Mapper) Image() []byte {
	return m.image
}

// Banks returns the number of banks of the image.
func (m *Mapper) Banks() int {
	return len(m.banks)
}

// Bank returns the bank with the given index.
func (m *Mapper) Bank(index int) Bank {
	return m.banks[index]
}

// SwitchableBanks returns all banks except the fixed bank 0 in increasing order.
func (m *Mapper) SwitchableBanks() []Bank {
	if len(m.banks) < 2 {
		return nil
	}
	return m.banks[1:]
}

// ReadWord reads a little endian 16 bit value at the absolute offset.
func (m *Mapper) ReadWord(offset int) uint16 {
	return binary.LittleEndian.Uint16(m.image[offset:])
}

// WriteWord writes a little endian 16 bit value at the absolute offset.
func (m *Mapper) WriteWord(offset int, value uint16) {
	binary.LittleEndian.PutUint16(m.image[offset:], value)
}

// Contains returns whether length bytes starting at offset are inside the image.
func (m *Mapper) Contains(offset, length int) bool {
	return offset >= 0 && length >= 0 && offset+length <= len(m.image)
}
