package dynamic

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Write me code for a binary search tree in C++.", want: "C++"},
		{text: "implement dijkstra in python please", want: "Python"},
		{text: "a quick javascript snippet", want: "JavaScript"},
		{text: "rewrite this in golang", want: "Go"},
		{text: "some rust code", want: "Rust"},
		{text: "no language mentioned here", want: ""},
	}
	for _, tc := range tests {
		if got := DetectLanguage(tc.text); got != tc.want {
			t.Fatalf("DetectLanguage(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cpp", want: "C++"},
		{in: "PY", want: "Python"},
		{in: "golang", want: "Go"},
		{in: "Fortran", want: "Fortran"},
	}
	for _, tc := range tests {
		if got := NormalizeLanguage(tc.in); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGuessTopic(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Write me code for a binary search tree in C++.", want: "me code for a binary search tree in C++"},
		{text: "Implement Dijkstra's algorithm", want: "Dijkstra's algorithm"},
		{text: "Quicksort refresher.", want: "Quicksort refresher"},
	}
	for _, tc := range tests {
		if got := GuessTopic(tc.text); got != tc.want {
			t.Fatalf("GuessTopic(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBuildUserMessage(t *testing.T) {
	out := BuildUserMessage(Params{Language: "Python", Topic: "a binary search tree", Detail: "deep"})
	if !strings.Contains(out, "well-commented Python code") {
		t.Fatalf("expected language in message, got: %s", out)
	}
	if !strings.Contains(out, "a binary search tree") {
		t.Fatalf("expected topic in message, got: %s", out)
	}
	if !strings.Contains(out, "edge cases") {
		t.Fatalf("expected deep detail line, got: %s", out)
	}
	if !strings.Contains(out, "Label the code block as `python`.") {
		t.Fatalf("expected fence label, got: %s", out)
	}
}

func TestValidDetail(t *testing.T) {
	for _, d := range []string{"basic", "normal", "deep"} {
		if !ValidDetail(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}
	if ValidDetail("extreme") {
		t.Fatalf("expected unknown detail level to be invalid")
	}
}
