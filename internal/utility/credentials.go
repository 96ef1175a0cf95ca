package utility

import (
	"crypto/rand"
	"math/big"
)

// passwordCharset excludes look-alike characters (0/O, 1/l) so generated
// credentials survive being read over the phone.
const passwordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%"

// GeneratePassword returns a random password of the given length (minimum 8).
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
