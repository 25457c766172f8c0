package wordlist

import "testing"

func TestFilterForLetter(t *testing.T) {
	filter := FilterForLetter('x')
	if !filter("X-ray") {
		t.Fatalf("expected X-ray to pass filter")
	}
	if !FilterForLetter('I')("Ice cream") {
		t.Fatalf("expected Ice cream to pass filter")
	}
	for _, word := range []string{"", "ray", "Xylophone!", "Xénon"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
