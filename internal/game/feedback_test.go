package game

import (
	"math/rand/v2"
	"testing"
)

func mustWord(t *testing.T, s string) Word {
	t.Helper()
	w, err := ParseWord(s)
	if err != nil {
		t.Fatalf("ParseWord(%q): %v", s, err)
	}
	return w
}

func TestClassify_Examples(t *testing.T) {
	cases := []struct {
		answer, guess string
		want          [Cols]Mark
	}{
		{"CRANE", "CRANE", [Cols]Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}},
		{"CRANE", "SLATE", [Cols]Mark{MarkMiss, MarkMiss, MarkHit, MarkMiss, MarkHit}},
		// A is not in SPEED, so the second E is the one left over.
		{"SPEED", "ERASE", [Cols]Mark{MarkPresent, MarkMiss, MarkMiss, MarkPresent, MarkPresent}},
		{"ALLOY", "LOLLY", [Cols]Mark{MarkPresent, MarkPresent, MarkHit, MarkMiss, MarkHit}},
		{"ABBEY", "BABES", [Cols]Mark{MarkPresent, MarkPresent, MarkHit, MarkHit, MarkMiss}},
		{"HELLO", "LLAMA", [Cols]Mark{MarkPresent, MarkPresent, MarkMiss, MarkMiss, MarkMiss}},
	}
	for _, c := range cases {
		got := Classify(mustWord(t, c.guess), mustWord(t, c.answer))
		if got != c.want {
			t.Fatalf("Classify(%s, %s) = %v, want %v", c.guess, c.answer, got, c.want)
		}
	}
}

func randomWord(r *rand.Rand) Word {
	var w Word
	for i := range w {
		// Small alphabet so repeats are common.
		w[i] = byte('A' + r.IntN(4))
	}
	return w
}

func TestClassify_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 5000; n++ {
		guess, answer := randomWord(r), randomWord(r)
		marks := Classify(guess, answer)

		credited := map[byte]int{}
		inAnswer := map[byte]int{}
		for i := 0; i < Cols; i++ {
			inAnswer[answer[i]]++
			if (guess[i] == answer[i]) != (marks[i] == MarkHit) {
				t.Fatalf("%s/%s: hit mismatch at %d: %v", guess, answer, i, marks)
			}
			if marks[i] == MarkUnset {
				t.Fatalf("%s/%s: unset mark at %d", guess, answer, i)
			}
			if marks[i] != MarkMiss {
				credited[guess[i]]++
			}
		}
		for c, k := range credited {
			if k > inAnswer[c] {
				t.Fatalf("%s/%s: %c credited %d times, answer has %d", guess, answer, c, k, inAnswer[c])
			}
		}
		if guess == answer && !allHit(marks) {
			t.Fatalf("%s: identical words must be all hits", guess)
		}
	}
}

func TestKeyboard_NeverDowngrades(t *testing.T) {
	var kb Keyboard
	answer := mustWord(t, "CRANE")
	kb.Apply(mustWord(t, "CRANE"), Classify(mustWord(t, "CRANE"), answer))
	kb.Apply(mustWord(t, "ACORN"), Classify(mustWord(t, "ACORN"), answer))
	if kb.Get('A') != MarkHit || kb.Get('C') != MarkHit {
		t.Fatalf("hit downgraded: A=%v C=%v", kb.Get('A'), kb.Get('C'))
	}
	if kb.Get('O') != MarkMiss {
		t.Fatalf("O = %v, want miss", kb.Get('O'))
	}
	if kb.Get('Z') != MarkUnset {
		t.Fatal("untouched key should be unset")
	}
}

func TestKeyboard_Monotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	var kb Keyboard
	answer := randomWord(r)
	for n := 0; n < 200; n++ {
		prev := kb
		g := randomWord(r)
		kb.Apply(g, Classify(g, answer))
		for i := range kb {
			if kb[i] < prev[i] {
				t.Fatalf("key %c went from %v to %v", 'A'+i, prev[i], kb[i])
			}
		}
	}
}
