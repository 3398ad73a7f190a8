package keycode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHIDCodes(t *testing.T) {
	tests := []struct {
		key  Key
		code byte
	}{
		{"NONE", 0x00},
		{"A", 0x04},
		{"Z", 0x1d},
		{"1", 0x1e},
		{"0", 0x27},
		{"ENTER", 0x28},
		{"TAB", 0x2b},
		{"SPACE", 0x2c},
		{"MINUS", 0x2d},
		{"SEMICOLON", 0x33},
		{LeftCtrl, 0xe0},
		{LeftShift, 0xe1},
		{LeftAlt, 0xe2},
		{RightAlt, 0xe6},
		{"MEDIA_MUTE", 0xef},
		{"MEDIA_CALC", 0xfb},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			code, err := Code(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHIDCodeRange(t *testing.T) {
	assert.Equal(t, 170, HID.Len())
	for _, k := range HID.Keys() {
		code, err := HID.Code(k)
		require.NoError(t, err)
		assert.LessOrEqual(t, code, byte(0xfb), "key %s", k)
	}
}

func TestHIDCodesUnique(t *testing.T) {
	seen := make(map[byte]Key)
	for _, k := range HID.Keys() {
		code, _ := HID.Code(k)
		if prev, ok := seen[code]; ok {
			t.Fatalf("code %#02x shared by %s and %s", code, prev, k)
		}
		seen[code] = k
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := Code("µ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))

	var uk *UnknownKeyError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, Key("µ"), uk.Key)
	assert.Contains(t, err.Error(), `"µ"`)
}

func TestName(t *testing.T) {
	name, ok := HID.Name(0xe1)
	require.True(t, ok)
	assert.Equal(t, LeftShift, name)

	_, ok = HID.Name(0x02)
	assert.False(t, ok)
}

func TestNewTableSharedCode(t *testing.T) {
	tbl := NewTable(map[Key]byte{"B": 0x10, "A": 0x10})
	name, ok := tbl.Name(0x10)
	require.True(t, ok)
	assert.Equal(t, Key("A"), name)
	assert.True(t, tbl.Has("B"))
	assert.False(t, tbl.Has("C"))
}

func TestKeysOrderedByCode(t *testing.T) {
	keys := HID.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, Key("NONE"), keys[0])
	assert.Equal(t, Key("MEDIA_CALC"), keys[len(keys)-1])
}
