package booking

import (
	"fmt"
	"math/rand"
)

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateConfirmationCode produces a short human-shareable reference: two
// uppercase letters followed by a four-digit number in [1000,9999]. Codes
// are not checked for uniqueness; the space is small but collisions carry no
// correctness weight since bookings are addressed by ID.
func GenerateConfirmationCode() string {
	letter1 := codeLetters[rand.Intn(len(codeLetters))]
	letter2 := codeLetters[rand.Intn(len(codeLetters))]
	numPart := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%c%c%d", letter1, letter2, numPart)
}
