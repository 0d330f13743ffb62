package tabx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Once upon a time in Shaolin", "once_upon_a_time_in_shaolin"},
		{"Board Length (mm)", "board_length_mm"},
		{"  padded  ", "padded"},
		{"Wholesale Price", "wholesale_price"},
		{"3.1", "3_1"},
		{"!!!", ""},
		{"", ""},
		{"already_a_slug", "already_a_slug"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, MakeSlug(c.input), "input %q", c.input)
	}
}

func TestMakeSlugsDuplicatesAndNulls(t *testing.T) {
	header := []Value{
		Text("Header"), Null(), Text("header"), Null(), Text("HEADER"), Null(), Null(),
	}
	expected := []string{"header", "_", "header2", "_2", "header3"}
	assert.Equal(t, expected, MakeSlugs(header))
}

func TestMakeSlugsUnique(t *testing.T) {
	// However messy the input, every output is distinct.
	header := []Value{
		Text(""), Text(""), Text("x"), Text("X"), Text("!"), Null(), Text("x"),
	}
	slugs := MakeSlugs(header)
	assert.Len(t, slugs, len(header))

	seen := make(map[string]bool)
	for _, slug := range slugs {
		assert.False(t, seen[slug], "duplicate slug %q", slug)
		seen[slug] = true
	}
}

func TestMakeSlugsSuffixDodgesLiterals(t *testing.T) {
	// A generated suffix must not collide with a literal "header2" further
	// along, or one already issued.
	header := []Value{Text("header"), Text("header2"), Text("header")}
	assert.Equal(t, []string{"header", "header2", "header3"}, MakeSlugs(header))

	header = []Value{Text("header"), Text("header"), Text("header2")}
	assert.Equal(t, []string{"header", "header2", "header22"}, MakeSlugs(header))
}

func TestMakeSlugsIdempotent(t *testing.T) {
	header := []Value{Text("header"), Text("header2"), Text("name")}
	first := MakeSlugs(header)
	assert.Equal(t, []string{"header", "header2", "name"}, first)

	again := make([]Value, len(first))
	for i, slug := range first {
		again[i] = Text(slug)
	}
	assert.Equal(t, first, MakeSlugs(again))
}

func TestMakeSlugsEmpty(t *testing.T) {
	assert.Empty(t, MakeSlugs(nil))
	assert.Empty(t, MakeSlugs([]Value{Null(), Null()}))
}
