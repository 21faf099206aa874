package mapper

// Bank is the location of a single bank inside the image.
type Bank struct {
	id    int
	start int
	end   int
}

func (m *Mapper) initializeBanks() {
	count := len(m.image) / BankSize
	m.banks = make([]Bank, 0, count)
	for i := range count {
		m.banks = append(m.banks, Bank{
			id:    i,
			start: i * BankSize,
			end:   (i + 1) * BankSize,
		})
	}
}

// ID returns the bank number.
func (b Bank) ID() int {
	return b.id
}

// Start returns the absolute offset of the first byte of the bank.
func (b Bank) Start() int {
	return b.start
}

// End returns the exclusive absolute end offset of the bank.
func (b Bank) End() int {
	return b.end
}

// Address converts an absolute offset inside the bank to the cartridge
// address that it is visible at when the bank is mapped.
func (b Bank) Address(offset int) uint16 {
	if b.id == 0 {
		return uint16(offset)
	}
	return uint16(offset - b.start + WindowStart)
}
