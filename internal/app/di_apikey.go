package app

import (
	apikeyUseCase "github.com/allisson/apikeys/internal/apikey/usecase"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// KeyUseCase returns the API key use case for alg, or for the configured algorithm when
// alg is empty. It is decorated with metrics when metrics are enabled.
func (c *Container) KeyUseCase(alg cryptoDomain.Algorithm) (apikeyUseCase.KeyUseCase, error) {
	codec, err := c.Codec(alg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	useCase, ok := c.keyUseCases[codec.Algorithm()]
	c.mu.Unlock()
	if ok {
		return useCase, nil
	}

	useCase = apikeyUseCase.NewKeyUseCase(codec, c.Logger())
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, err
		}
		useCase = apikeyUseCase.NewKeyUseCaseWithMetrics(useCase, businessMetrics)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.keyUseCases[codec.Algorithm()]; ok {
		return existing, nil
	}
	c.keyUseCases[codec.Algorithm()] = useCase
	return useCase, nil
}
