package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded returns a reproducible generator. A zero seed uses the current time.
func Seeded(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return mrand.New(mrand.NewSource(seed))
}
