// internal/adapters/out/gcs/image_url_signer.go
package gcs

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

const signedURLTTL = 15 * time.Minute

// ImageURLSigner resolves gs://bucket/object product image references to V4
// signed HTTPS GET URLs. References that are not gs:// (already https, CDN
// paths seeded from the catalog) pass through unchanged.
type ImageURLSigner struct {
	Client *storage.Client
}

func NewImageURLSigner(client *storage.Client) *ImageURLSigner {
	return &ImageURLSigner{Client: client}
}

func (s *ImageURLSigner) Resolve(ctx context.Context, ref string) (string, error) {
	r := strings.TrimSpace(ref)
	if !strings.HasPrefix(r, "gs://") {
		return r, nil
	}
	if s == nil || s.Client == nil {
		return "", errors.New("image_url_signer: storage client is nil")
	}

	rest := strings.TrimPrefix(r, "gs://")
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", errors.New("image_url_signer: bad gs reference: " + ref)
	}

	return s.Client.Bucket(bucket).SignedURL(object, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(signedURLTTL),
		Scheme:  storage.SigningSchemeV4,
	})
}
