package cpu

// Word is the machine's native value type.
type Word uint16

const (
	MODULUS     = 32768 // Arithmetic wraps modulo this
	MAX_LITERAL = 32767 // Largest literal operand value
	REG_LOW     = 32768 // Operand field naming register r0
	REG_HIGH    = 32775 // Operand field naming register r7
)

// IsRegister returns true if the operand field names a register.
func (w Word) IsRegister() bool {
	return w >= REG_LOW && w <= REG_HIGH
}
