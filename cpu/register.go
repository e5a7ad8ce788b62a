package cpu

const (
	REGISTER_SIZE = 8 // Cells in the register bank
)

// Registers is the machine's register bank.
type Registers [REGISTER_SIZE]Word

// Read resolves an operand field to its value. Literal fields pass
// through unchanged, register fields read the named cell.
func (r *Registers) Read(field Word) (value Word, err error) {
	switch {
	case field <= MAX_LITERAL:
		value = field
	case field <= REG_HIGH:
		value = r[field-REG_LOW]
	default:
		err = ErrValueRange
	}

	return
}

// Write stores a value into the register named by an operand field.
func (r *Registers) Write(field Word, value Word) (err error) {
	if !field.IsRegister() {
		err = ErrRegisterRange
		return
	}

	r[field-REG_LOW] = value

	return
}
