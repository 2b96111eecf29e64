package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var firstNames = []string{
	"Avery", "Blake", "Casey", "Devon", "Emery",
	"Finley", "Harper", "Jordan", "Kendall", "Logan",
	"Morgan", "Parker", "Quinn", "Reese", "Riley",
	"Rowan", "Sawyer", "Skyler", "Taylor", "Wren",
}

var lastNames = []string{
	"Adams", "Brooks", "Carter", "Diaz", "Ellis",
	"Foster", "Garcia", "Hayes", "Irwin", "Jensen",
	"Kim", "Lopez", "Miller", "Nguyen", "Owens",
	"Patel", "Reed", "Silva", "Turner", "Walsh",
}

// GenerateUsername creates a random username in the format "First.Last1234"
func GenerateUsername() (string, error) {
	first, err := RandomInt(len(firstNames))
	if err != nil {
		return "", fmt.Errorf("failed to generate random first name: %w", err)
	}

	last, err := RandomInt(len(lastNames))
	if err != nil {
		return "", fmt.Errorf("failed to generate random last name: %w", err)
	}

	suffix, err := RandomInt(10000)
	if err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}

	return fmt.Sprintf("%s.%s%04d", firstNames[first], lastNames[last], suffix), nil
}

// RandomInt returns a uniformly random integer in [0, max)
func RandomInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
