package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddChecked(t *testing.T) {
	assert := assert.New(t)

	sum, ok := AddChecked(uint8(250), uint8(5))
	assert.True(ok)
	assert.Equal(uint8(255), sum)

	_, ok = AddChecked(uint8(250), uint8(6))
	assert.False(ok)

	_, ok = AddChecked(uint16(65535), uint16(1))
	assert.False(ok)
}

func TestParseHex(t *testing.T) {
	for _, in := range []string{"3c 00 02 02", "3c000202", "0x3c,0x00,0x02,0x02", "3C:00:02:02"} {
		res, err := ParseHex(in)
		assert.NoError(t, err, in)
		assert.Equal(t, []byte{0x3c, 0, 2, 2}, res, in)
	}

	_, err := ParseHex("zz")
	assert.Error(t, err)
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "3c 00 02 0a", FormatHex([]byte{0x3c, 0, 2, 10}))
	assert.Equal(t, "", FormatHex(nil))
}
