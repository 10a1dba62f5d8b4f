package utils

// Shuffler is satisfied by golang.org/x/exp/rand and math/rand generators.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle permutes slice in place with rng.
func Shuffle[T any](slice []T, rng Shuffler) {
	rng.Shuffle(len(slice), func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})
}
