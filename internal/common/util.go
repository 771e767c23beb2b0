package common

// WipeByteArray zeroes b in place. Used to drop plaintext passwords from
// memory once they have been sent. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
