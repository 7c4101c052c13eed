package app

import (
	"context"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

// CodecManager returns the codec factory.
func (c *Container) CodecManager() cryptoService.CodecManager {
	c.codecManagerInit.Do(func() {
		c.codecManager = cryptoService.NewCodecManager()
	})
	return c.codecManager
}

// Codec returns the codec for alg, or for the configured algorithm when alg is empty.
func (c *Container) Codec(alg cryptoDomain.Algorithm) (cryptoService.Codec, error) {
	if alg == "" {
		alg = cryptoDomain.Algorithm(c.config.Algorithm)
	}
	return c.CodecManager().CreateCodec(alg)
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// SecretLoader returns the loader resolving secrets from flags, files and the environment.
func (c *Container) SecretLoader() *cryptoService.SecretLoader {
	c.secretLoaderInit.Do(func() {
		c.secretLoader = cryptoService.NewSecretLoader(c.KMSService())
	})
	return c.secretLoader
}

// LoadSecret resolves the secret from the explicit value or file, falling back to
// APIKEYS_SECRET. KMS_KEY_URI applies to every source.
func (c *Container) LoadSecret(ctx context.Context, value, file string) (string, error) {
	return c.SecretLoader().Load(ctx, cryptoService.SecretSource{
		Value:     value,
		File:      file,
		Env:       c.config.Secret,
		KMSKeyURI: c.config.KMSKeyURI,
	})
}
