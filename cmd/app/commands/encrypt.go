package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

// RunEncrypt encrypts data with secret and prints the token.
func RunEncrypt(codec cryptoService.Codec, writer io.Writer, secret, data string) error {
	token, err := codec.Encrypt(secret, []byte(data))
	if err != nil {
		return fmt.Errorf("failed to encrypt data: %w", err)
	}
	_, err = fmt.Fprintln(writer, token)
	return err
}

// RunDecrypt decrypts token with secret and prints the plaintext.
func RunDecrypt(codec cryptoService.Codec, writer io.Writer, secret, token string) error {
	plaintext, err := codec.Decrypt(secret, token)
	if err != nil {
		return fmt.Errorf("failed to decrypt data: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	_, err = fmt.Fprintln(writer, string(plaintext))
	return err
}
