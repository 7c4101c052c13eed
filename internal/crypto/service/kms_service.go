package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"

	// Drivers for every scheme in kmsSchemes.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsSchemes are the key URI schemes accepted for wrapping API key secrets.
// base64key:// keeps the wrapping key locally and is meant for development.
var kmsSchemes = []string{"awskms", "azurekeyvault", "gcpkms", "hashivault", "base64key"}

// kmsService opens gocloud.dev keepers that wrap the API key secret at rest, so a
// deployment can ship the secret as KMS ciphertext and unwrap it at startup.
type kmsService struct{}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens the keeper that wraps and unwraps secrets under keyURI.
// The scheme is checked first, so a typo never reaches a cloud provider.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	scheme, _, found := strings.Cut(keyURI, "://")
	if !found || !slices.Contains(kmsSchemes, scheme) {
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedKMSScheme, scheme)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s keeper for secret: %w", scheme, err)
	}
	return keeper, nil
}
