package encryption

import (
	"strings"
	"testing"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	c, err := NewCipher("your-32-character-ultra-secure-key!")
	require.NoError(t, err)

	inputs := []string{"a", "wazuh-admin-password", strings.Repeat("x", 16), strings.Repeat("y", 100), "pässwörd ✓"}
	for _, in := range inputs {
		token, err := c.Encrypt(in)
		require.NoError(t, err)
		assert.True(t, IsEncrypted(token), token)

		out, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestEncryptUsesFreshIV(t *testing.T) {
	c, err := NewCipher("short")
	require.NoError(t, err)

	a, err := c.Encrypt("same")
	require.NoError(t, err)
	b, err := c.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.Split(a, ":")[0], IVSize*2)
}

func TestDecryptFailures(t *testing.T) {
	c, err := NewCipher("first-key")
	require.NoError(t, err)
	other, err := NewCipher("a-completely-different-key-value")
	require.NoError(t, err)

	token, err := other.Encrypt("secret-value-from-elsewhere")
	require.NoError(t, err)

	garbage := []string{
		"",
		"no-separator",
		"a:b:c",
		"zz:zz",
		"00112233445566778899aabbccddeeff:abc",
		"0011:00112233445566778899aabbccddeeff",
		token,
	}
	for _, g := range garbage {
		_, err := c.Decrypt(g)
		assert.ErrorIs(t, err, constants.ErrDecryptionFailed, "input %q", g)
	}
}

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, []byte("abc00000000000000000000000000000"), DeriveKey("abc"))
	assert.Equal(t, []byte("your-32-character-ultra-secure-k"), DeriveKey("your-32-character-ultra-secure-key!"))
}

func TestIsEncrypted(t *testing.T) {
	assert.False(t, IsEncrypted("plain-password"))
	assert.False(t, IsEncrypted("abcd:ef"))
	assert.True(t, IsEncrypted("00112233445566778899aabbccddeeff:00"))
}

func TestNewCipherRejectsEmptyKey(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)
}
