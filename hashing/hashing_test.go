package hashing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fooBarSHA256 = "c3ab8ff13720e8ad9047dd39466b3c8974e592c2fa383d4a3960714caef0c4f2"

func TestHexDigest(t *testing.T) {
	require.Equal(t, fooBarSHA256, HexDigest("foo", "bar"))
	require.Equal(t, fooBarSHA256, HexDigest([]byte("foo"), []byte("bar")))

	// Hashing is over the concatenation; part boundaries do not matter.
	require.Equal(t, fooBarSHA256, HexDigest("foobar"))
}

func TestDigestRoundTrip(t *testing.T) {
	d := FromBytes("foobar")
	require.Equal(t, fooBarSHA256, d.Hex())
	require.Equal(t, strings.ToUpper(fooBarSHA256), d.String())

	parsed, err := FromHex(d.Hex())
	require.NoError(t, err)
	require.Equal(t, d, parsed)
}

func TestFromHex_Errors(t *testing.T) {
	_, err := FromHex("zz")
	require.Error(t, err)

	_, err = FromHex("c3ab8f")
	require.Error(t, err)
	var lengthErr *LengthError
	require.ErrorAs(t, err, &lengthErr)
	require.Equal(t, 3, lengthErr.Got)
	require.Equal(t, Size, lengthErr.Expected)
}

func TestFromReaderAndFile(t *testing.T) {
	d, err := FromReader(strings.NewReader("foobar"))
	require.NoError(t, err)
	require.Equal(t, fooBarSHA256, d.Hex())

	path := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.WriteFile(path, []byte("foobar"), 0o644))

	hexDigest, err := HexDigestFile(path)
	require.NoError(t, err)
	require.Equal(t, fooBarSHA256, hexDigest)

	_, err = HexDigestFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestBlake2bDigest(t *testing.T) {
	single := Blake2bDigest("foobar")
	split := Blake2bDigest("foo", "bar")
	require.Equal(t, single, split)
	require.Len(t, single, 64)
	require.NotEqual(t, fooBarSHA256, single)
}
