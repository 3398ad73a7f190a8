package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkey/internal/keycode"
)

func TestRegisteredTablesValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			tbl, err := Lookup(name)
			require.NoError(t, err)
			require.NoError(t, tbl.Validate(keycode.HID))
			assert.Greater(t, tbl.Len(), 90)
		})
	}
}

func TestGermanResolve(t *testing.T) {
	tbl, err := Lookup("de")
	require.NoError(t, err)

	tests := []struct {
		char rune
		keys []keycode.Key
	}{
		{'1', []keycode.Key{"1"}},
		{'!', []keycode.Key{keycode.LeftShift, "1"}},
		{'z', []keycode.Key{"Y"}},
		{'Y', []keycode.Key{keycode.LeftShift, "Z"}},
		{'@', []keycode.Key{keycode.RightAlt, "Q"}},
		{'€', []keycode.Key{keycode.RightAlt, "E"}},
		{'~', []keycode.Key{keycode.LeftAlt, "RIGHTBRACE"}},
		{'ß', []keycode.Key{"MINUS"}},
		{'\\', []keycode.Key{keycode.RightAlt, "MINUS"}},
		{'-', []keycode.Key{"SLASH"}},
		{'ö', []keycode.Key{"SEMICOLON"}},
		{'Ö', []keycode.Key{"SEMICOLON"}},
		{'µ', []keycode.Key{keycode.RightAlt, "M"}},
		{'\n', []keycode.Key{"ENTER"}},
		{'\t', []keycode.Key{"TAB"}},
		{' ', []keycode.Key{"SPACE"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			keys, err := tbl.Resolve(tt.char)
			require.NoError(t, err)
			assert.Equal(t, tt.keys, keys)
		})
	}
}

func TestUSResolve(t *testing.T) {
	tbl, err := Lookup("US")
	require.NoError(t, err)

	keys, err := tbl.Resolve('z')
	require.NoError(t, err)
	assert.Equal(t, []keycode.Key{"Z"}, keys)

	keys, err = tbl.Resolve('@')
	require.NoError(t, err)
	assert.Equal(t, []keycode.Key{keycode.LeftShift, "2"}, keys)

	assert.False(t, tbl.Supports('ä'))
}

func TestResolveUnsupported(t *testing.T) {
	tbl, err := Lookup(Default)
	require.NoError(t, err)

	for _, r := range []rune{'😀', '\r', 'é', 0} {
		_, err := tbl.Resolve(r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedCharacter))

		var uc *UnsupportedCharacterError
		require.True(t, errors.As(err, &uc))
		assert.Equal(t, r, uc.Char)
		assert.Equal(t, "de", uc.Layout)
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	tbl, err := Lookup("de")
	require.NoError(t, err)

	keys, err := tbl.Resolve('A')
	require.NoError(t, err)
	keys[0] = "CORRUPTED"

	again, err := tbl.Resolve('A')
	require.NoError(t, err)
	assert.Equal(t, []keycode.Key{keycode.LeftShift, "A"}, again)
}

func TestModifiersPrecedeBaseKey(t *testing.T) {
	modifiers := map[keycode.Key]bool{
		keycode.LeftShift: true, keycode.RightAlt: true, keycode.LeftAlt: true,
	}
	for _, name := range Names() {
		tbl, _ := Lookup(name)
		for _, r := range tbl.Characters() {
			keys, _ := tbl.Resolve(r)
			last := keys[len(keys)-1]
			assert.False(t, modifiers[last], "%s: %U ends with modifier %s", name, r, last)
		}
	}
}

func TestValidateRejectsMissingKey(t *testing.T) {
	tbl := &Table{
		name: "broken",
		entries: map[rune][]keycode.Key{
			'µ': {altGr, "µ"},
			'x': {},
		},
	}
	err := tbl.Validate(keycode.HID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTable))
	assert.Contains(t, err.Error(), `U+00B5 references "µ"`)
	assert.Contains(t, err.Error(), "U+0078 has no keys")
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("dvorak")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLayout))
	assert.Contains(t, err.Error(), "de, us")
}

func TestUnsupportedCharacterErrorMessage(t *testing.T) {
	err := &UnsupportedCharacterError{Char: '😀', Layout: "de", Offset: 3}
	assert.Equal(t, `layout: unsupported character U+1F600 in layout "de" at position 3`, err.Error())
}
