package earlyreturn

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single rune", in: "a", want: "a"},
		{name: "ascii", in: "abc", want: "cba"},
		{name: "demo sentence", in: "This text is reversed now.", want: ".won desrever si txet sihT"},
		{name: "palindrome", in: "racecar", want: "racecar"},
		{name: "multibyte", in: "héllo, 世界", want: "界世 ,olléh"},
		{name: "even length", in: "abcd", want: "dcba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reverse(tt.in))
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	inputs := []string{
		"x",
		"go",
		"early return",
		"This text is reversed now.",
		"ünïcödé",
		"日本語のテキスト",
		"tab\tand\nnewline",
	}
	for _, s := range inputs {
		assert.Equal(t, s, Reverse(Reverse(s)), "Reverse(Reverse(%q))", s)
	}
}

func TestReverse_LeavesInputUntouched(t *testing.T) {
	in := "immutable"
	_ = Reverse(in)
	assert.Equal(t, "immutable", in)
}

func TestReverse_InvalidUTF8(t *testing.T) {
	got := Reverse("a\xffb")
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "b\uFFFDa", got)
}

func TestReverseGraphemes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "ascii matches Reverse", in: "abc", want: "cba"},
		// "e" + COMBINING ACUTE ACCENT stays one cluster.
		{name: "combining mark", in: "ae\u0301b", want: "be\u0301a"},
		{name: "flag pair", in: "x\U0001F1EF\U0001F1F5y", want: "y\U0001F1EF\U0001F1F5x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseGraphemes(tt.in))
		})
	}
}

func TestReverseGraphemes_Involution(t *testing.T) {
	s := "cafe\u0301 \U0001F44D\U0001F3FD ok"
	assert.Equal(t, s, ReverseGraphemes(ReverseGraphemes(s)))
	// Code point reversal detaches the accent; grapheme reversal does not.
	assert.NotEqual(t, ReverseGraphemes(s), Reverse(s))
}

func TestReverseGraphemes_LeadingOrphanMark(t *testing.T) {
	// A combining circumflex with no base is its own cluster at the start,
	// but attaches to "0" once moved to the end.
	s := "\u0302" + "0"
	once := ReverseGraphemes(s)
	assert.Equal(t, "0\u0302", once)
	assert.Equal(t, "0\u0302", ReverseGraphemes(once))
	assert.NotEqual(t, s, ReverseGraphemes(once))
}

func FuzzReverse(f *testing.F) {
	f.Add("This text is reversed now.")
	f.Add("a")
	f.Add("héllo, 世界")
	f.Add("cafe\u0301 \U0001F44D\U0001F3FD")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("invalid UTF-8 decodes to U+FFFD")
		}

		reversed := Reverse(s)
		if got := utf8.RuneCountInString(reversed); got != utf8.RuneCountInString(s) {
			t.Fatalf("Reverse(%q) has %d runes, want %d", s, got, utf8.RuneCountInString(s))
		}
		if back := Reverse(reversed); back != s {
			t.Fatalf("Reverse(Reverse(%q)) = %q", s, back)
		}
	})
}
