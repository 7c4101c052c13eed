package service

import (
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// CodecManagerService implements the CodecManager interface.
type CodecManagerService struct{}

// NewCodecManager creates a new CodecManagerService.
func NewCodecManager() *CodecManagerService {
	return &CodecManagerService{}
}

// CreateCodec returns the codec for the specified algorithm.
// Returns ErrUnsupportedAlgorithm if algorithm is unknown.
func (m *CodecManagerService) CreateCodec(alg cryptoDomain.Algorithm) (Codec, error) {
	switch alg {
	case cryptoDomain.Fernet:
		return NewFernetCodec(), nil
	case cryptoDomain.AESGCM:
		return NewAESGCMCodec(), nil
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305Codec(), nil
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
