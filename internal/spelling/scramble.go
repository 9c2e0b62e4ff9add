package spelling

import "github.com/eduplay/eduplay/internal/random"

// maxScrambleAttempts bounds how often Scramble reshuffles a word that came
// out in its original order.
const maxScrambleAttempts = 8

// Scramble returns the letters of word in shuffled order. The original
// order is only returned when every letter is the same; if repeated
// shuffles keep reproducing it, the letters are rotated by one instead.
func Scramble(src random.Source, word string) []rune {
	letters := []rune(word)
	if !hasDistinctLetters(letters) {
		return letters
	}

	out := make([]rune, len(letters))
	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		copy(out, letters)
		random.Shuffle(src, len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		if string(out) != word {
			return out
		}
	}

	// A rotation by one differs from the original whenever two letters differ.
	copy(out, letters[1:])
	out[len(out)-1] = letters[0]
	return out
}

func hasDistinctLetters(letters []rune) bool {
	for _, r := range letters[min(1, len(letters)):] {
		if r != letters[0] {
			return true
		}
	}
	return false
}
