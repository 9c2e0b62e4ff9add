package spelling

import "fmt"

// Word is a catalog entry.
type Word struct {
	Word string
	Hint string
	Tier int
}

// TierLabel returns the difficulty label shown next to the hint.
func (w Word) TierLabel() string {
	switch w.Tier {
	case 1:
		return "Easy"
	case 2:
		return "Medium"
	default:
		return "Hard"
	}
}

var catalog = [...]Word{
	{Word: "HAPPY", Hint: "A feeling of joy 😊", Tier: 1},
	{Word: "SCHOOL", Hint: "Where you learn 📚", Tier: 1},
	{Word: "FRIEND", Hint: "Someone you play with 👫", Tier: 2},
	{Word: "NATURE", Hint: "Trees, flowers, and animals 🌳", Tier: 2},
	{Word: "RAINBOW", Hint: "Colorful arc in the sky 🌈", Tier: 2},
	{Word: "ELEPHANT", Hint: "Large animal with trunk 🐘", Tier: 3},
	{Word: "ADVENTURE", Hint: "An exciting journey 🗺️", Tier: 3},
	{Word: "WONDERFUL", Hint: "Something amazing 🌟", Tier: 3},
	{Word: "BUTTERFLY", Hint: "Beautiful flying insect 🦋", Tier: 3},
	{Word: "BRILLIANT", Hint: "Very smart or bright ✨", Tier: 3},
}

func init() {
	if err := ValidateWords(catalog[:]); err != nil {
		panic(err)
	}
}

// Catalog returns a copy of the word list.
func Catalog() []Word {
	out := make([]Word, len(catalog))
	copy(out, catalog[:])
	return out
}

// ValidateWords checks that every word is non-empty uppercase A-Z, carries
// a hint and has a tier of 1, 2 or 3.
func ValidateWords(words []Word) error {
	if len(words) == 0 {
		return fmt.Errorf("word list is empty")
	}
	for i, w := range words {
		if w.Word == "" {
			return fmt.Errorf("word %d: empty", i)
		}
		for _, r := range w.Word {
			if r < 'A' || r > 'Z' {
				return fmt.Errorf("word %d (%q): %q is not an uppercase letter", i, w.Word, r)
			}
		}
		if w.Hint == "" {
			return fmt.Errorf("word %d (%q): missing hint", i, w.Word)
		}
		if w.Tier < 1 || w.Tier > 3 {
			return fmt.Errorf("word %d (%q): tier %d out of range", i, w.Word, w.Tier)
		}
	}
	return nil
}
