package main

// binarySniffLen bounds how many leading bytes are examined when deciding
// whether a file is text.
const binarySniffLen = 1024

// isBinaryData reports whether the data fails the text heuristic: a NUL
// byte, or any control byte below 0x20 other than tab, newline and
// carriage return, marks it as binary. Only the first binarySniffLen bytes
// are examined.
func isBinaryData(data []byte) bool {
	sample := data
	if len(sample) > binarySniffLen {
		sample = sample[:binarySniffLen]
	}
	for _, b := range sample {
		if b == 0x00 {
			return true
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return true
		}
	}
	return false
}
