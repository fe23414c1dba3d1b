package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Soumendu22/NSBack/internal/constants"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the CBC initialisation vector length in bytes.
	IVSize = aes.BlockSize

	tokenSeparator = ":"
)

// Cipher encrypts the linked Wazuh secret into an `ivHex:cipherHex` token using AES-256-CBC.
// It is safe for concurrent use.
type Cipher struct {
	block cipher.Block
}

// NewCipher derives a 32 byte key from the configured secret (right padded with '0',
// truncated when longer) and returns a Cipher bound to it.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("encryption key must not be empty")
	}
	block, err := aes.NewCipher(DeriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return &Cipher{block: block}, nil
}

// DeriveKey pads or truncates secret to KeySize bytes.
func DeriveKey(secret string) []byte {
	key := []byte(secret)
	if len(key) >= KeySize {
		return key[:KeySize]
	}
	return append(key, bytes.Repeat([]byte{'0'}, KeySize-len(key))...)
}

// Encrypt returns a fresh token for plaintext. Two calls with the same input yield
// different tokens because the IV is random.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + tokenSeparator + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Malformed tokens and tokens produced under another key
// fail with constants.ErrDecryptionFailed.
func (c *Cipher) Decrypt(token string) (string, error) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: expected 2 segments, got %d", constants.ErrDecryptionFailed, len(parts))
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != IVSize {
		return "", fmt.Errorf("%w: invalid iv", constants.ErrDecryptionFailed)
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: invalid ciphertext", constants.ErrDecryptionFailed)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil || !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: bad padding or key mismatch", constants.ErrDecryptionFailed)
	}
	return string(plaintext), nil
}

// IsEncrypted reports whether value has the shape of a token produced by Encrypt.
func IsEncrypted(value string) bool {
	parts := strings.Split(value, tokenSeparator)
	if len(parts) != 2 || len(parts[0]) != IVSize*2 || len(parts[1]) == 0 {
		return false
	}
	_, errIV := hex.DecodeString(parts[0])
	_, errCT := hex.DecodeString(parts[1])
	return errIV == nil && errCT == nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding size %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding byte")
		}
	}
	return data[:len(data)-n], nil
}
