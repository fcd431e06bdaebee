package core

// Rand is the randomness the rules consume. *math/rand.Rand satisfies it.
type Rand interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
	// Intn returns a value in [0, n).
	Intn(n int) int
}
