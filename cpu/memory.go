package cpu

const (
	MEMORY_SIZE = 32768 // Words of addressable memory
)

// Memory is the machine's flat word address space. Addresses must be
// below MEMORY_SIZE; the machine validates them before every access.
type Memory [MEMORY_SIZE]Word

// Read returns the word at an address.
func (m *Memory) Read(addr Word) Word {
	return m[addr]
}

// Write stores a word at an address.
func (m *Memory) Write(addr Word, value Word) {
	m[addr] = value
}

// Load copies an image into memory, starting at address zero.
func (m *Memory) Load(image []Word) {
	copy(m[:], image)
}
