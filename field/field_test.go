package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descriptorImage builds a 32-byte descriptor image the way writers lay it
// out: NUL-padded name, type tag at 11, length at 16, decimals at 17.
func descriptorImage(name string, typ byte, length, decimals uint8) []byte {
	b := make([]byte, DescriptorSize)
	copy(b[:11], name)
	b[11] = typ
	b[16] = length
	b[17] = decimals
	return b
}

func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor(descriptorImage("NAME", 'C', 10, 0))
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Name: "NAME", Type: TypeCharacter, Length: 10}, d)

	d, err = ParseDescriptor(descriptorImage("PRICE", 'N', 8, 2))
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Name: "PRICE", Type: TypeNumeric, Length: 8, Decimals: 2}, d)
	assert.Equal(t, "PRICE N(8,2)", d.String())
}

func TestParseDescriptorNamePadding(t *testing.T) {
	// Full 11-byte name, no NUL.
	d, err := ParseDescriptor(descriptorImage("ABCDEFGHIJK", 'C', 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJK", d.Name)

	// Space padding after the NUL terminator region.
	img := descriptorImage("ID", 'N', 4, 0)
	img[2] = 0x00
	img[3] = ' '
	d, err = ParseDescriptor(img)
	require.NoError(t, err)
	assert.Equal(t, "ID", d.Name)
}

func TestParseDescriptorInvalid(t *testing.T) {
	// 1. Blank name
	_, err := ParseDescriptor(descriptorImage("", 'C', 10, 0))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	// 2. Unknown type tag
	_, err = ParseDescriptor(descriptorImage("NAME", 'X', 10, 0))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	// 3. Wrong image size
	_, err = ParseDescriptor(make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Character", TypeCharacter.String())
	assert.Equal(t, "Memo", TypeMemo.String())
	assert.Equal(t, "Unknown(0x58)", Type('X').String())
}
