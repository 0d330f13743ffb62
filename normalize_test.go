package tabx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSquareRow(t *testing.T) {
	norm, err := newNormalizer([]string{"a", "b", "c"}, "", Null())
	require.NoError(t, err)

	record := norm.normalize([]Value{Text("1"), Text("2"), Text("3")})
	assert.Equal(t, Record{"a": Text("1"), "b": Text("2"), "c": Text("3")}, record)
}

func TestNormalizeTooFewValues(t *testing.T) {
	norm, err := newNormalizer([]string{"header", "header2", "header3"}, "", Null())
	require.NoError(t, err)

	record := norm.normalize([]Value{Text("One"), Text("Two")})
	assert.Equal(t, Record{
		"header":  Text("One"),
		"header2": Text("Two"),
		"header3": Null(),
	}, record)
}

func TestNormalizeTooManyValues(t *testing.T) {
	norm, err := newNormalizer([]string{"header", "header2", "header3"}, "excess", Null())
	require.NoError(t, err)

	record := norm.normalize([]Value{
		Text("One"), Text("Two"), Text("Three"), Text("Four"), Text("Five"),
	})
	assert.Equal(t, Record{
		"header":  Text("One"),
		"header2": Text("Two"),
		"header3": Text("Three"),
		"excess":  []Value{Text("Four"), Text("Five")},
	}, record)
}

func TestNormalizeRestkeyClash(t *testing.T) {
	_, err := newNormalizer([]string{"header", "default"}, "default", Null())
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNormalizeTrailingNullsTrimmed(t *testing.T) {
	// Trailing nulls are padding, not excess data.
	norm, err := newNormalizer([]string{"a", "b"}, "rest", Null())
	require.NoError(t, err)

	record := norm.normalize([]Value{Text("1"), Text("2"), Null(), Null()})
	assert.Equal(t, Record{"a": Text("1"), "b": Text("2")}, record)
}

func TestNormalizeKeySetInvariant(t *testing.T) {
	// Key set is exactly the field names, plus the restkey when used.
	fields := []string{"a", "b", "c"}
	norm, err := newNormalizer(fields, "rest", Null())
	require.NoError(t, err)

	rows := [][]Value{
		{},
		{Text("1")},
		{Text("1"), Text("2"), Text("3")},
		{Text("1"), Text("2"), Text("3"), Text("4")},
	}
	for _, row := range rows {
		record := norm.normalize(row)
		for _, name := range fields {
			assert.Contains(t, record, name)
		}
		if len(row) > len(fields) {
			assert.Len(t, record, len(fields)+1)
		} else {
			assert.Len(t, record, len(fields))
		}
	}
}

func TestIsTerminator(t *testing.T) {
	assert.True(t, isTerminator(nil))
	assert.True(t, isTerminator([]Value{Null(), Null()}))
	assert.False(t, isTerminator([]Value{Null(), Text("x")}))
}

func TestRstripRow(t *testing.T) {
	row := []Value{Null(), Number(1), Null(), Number(2), Null(), Null()}
	assert.Equal(t, []Value{Null(), Number(1), Null(), Number(2)}, rstripRow(row))
	assert.Empty(t, rstripRow([]Value{Null(), Null()}))
}
