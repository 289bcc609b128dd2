// internal/game/feedback.go
//
// Guess scoring and keyboard status aggregation.
//
// Classify resolves a guess in four passes so that repeated letters are never
// credited more often than they occur in the answer:
//   1. exact matches are hits (guess and answer positions consumed);
//   2. letters that occur nowhere in the answer are misses;
//   3. remaining letters take the first unconsumed matching answer position
//      and become presents;
//   4. whatever is left (surplus repeats) is a miss.

package game

// Classify scores guess against answer. Both must be uppercase.
func Classify(guess, answer Word) [Cols]Mark {
	var (
		res        [Cols]Mark
		usedGuess  [Cols]bool
		usedAnswer [Cols]bool
	)

	// Pass 1: hits.
	for i := 0; i < Cols; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
			usedGuess[i] = true
			usedAnswer[i] = true
		}
	}

	// Pass 2: letters absent from the answer altogether.
	for i := 0; i < Cols; i++ {
		if usedGuess[i] {
			continue
		}
		if !contains(answer, guess[i]) {
			res[i] = MarkMiss
			usedGuess[i] = true
		}
	}

	// Pass 3: presents, each answer position credited once.
	for i := 0; i < Cols; i++ {
		for j := 0; j < Cols && !usedGuess[i]; j++ {
			if guess[i] == answer[j] && !usedAnswer[j] {
				res[i] = MarkPresent
				usedGuess[i] = true
				usedAnswer[j] = true
			}
		}
	}

	// Pass 4: surplus repeats.
	for i := 0; i < Cols; i++ {
		if !usedGuess[i] {
			res[i] = MarkMiss
		}
	}
	return res
}

func contains(w Word, c byte) bool {
	for i := 0; i < Cols; i++ {
		if w[i] == c {
			return true
		}
	}
	return false
}

// allHit returns true if all marks are MarkHit.
func allHit(m [Cols]Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

// Keyboard holds the best Mark seen so far for each letter A..Z.
type Keyboard [Letters]Mark

// Apply merges one scored guess. A letter only ever moves up the Mark order.
func (k *Keyboard) Apply(guess Word, marks [Cols]Mark) {
	for i := 0; i < Cols; i++ {
		j := idx(guess[i])
		if j < 0 || j >= Letters {
			continue
		}
		if marks[i] > k[j] {
			k[j] = marks[i]
		}
	}
}

// Get returns the status of an uppercase letter.
func (k Keyboard) Get(c byte) Mark {
	j := idx(c)
	if j < 0 || j >= Letters {
		return MarkUnset
	}
	return k[j]
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int { return int(c) - 'A' }
