package blocks

import "github.com/google/uuid"

// NewID generates a block identifier. A package variable so tests can pin
// it to a fixed value and assert structural idempotence of normalization.
var NewID = func() string {
	return uuid.NewString()
}
