package tablefmt

// Float notation thresholds
const (
	minFixedDecpt     = -4 // decimal point positions <= this switch to exponent notation
	maxFixedDecpt     = 16 // decimal point positions > this switch to exponent notation
	minExponentDigits = 2  // exponent is zero-padded to at least two digits
)

// I/O constants
const (
	columnSeparator = " "
	rowTerminator   = "\n"
	writeBufferSize = 16 * 1024
)
