// internal/adapters/out/secrets/api_key_provider_sm.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// APIKeyProviderSM reads API keys from Secret Manager. Used at boot to
// resolve the SendGrid key when it is not present in the environment.
type APIKeyProviderSM struct {
	SM        *secretmanager.Client
	ProjectID string
}

func NewAPIKeyProviderSM(sm *secretmanager.Client, projectID string) *APIKeyProviderSM {
	return &APIKeyProviderSM{SM: sm, ProjectID: projectID}
}

// Get returns the latest version payload of secretID, trimmed.
func (p *APIKeyProviderSM) Get(ctx context.Context, secretID string) (string, error) {
	if p == nil || p.SM == nil {
		return "", errors.New("api_key_provider_sm: secret manager client is nil")
	}

	sid := strings.TrimSpace(secretID)
	if sid == "" {
		return "", errors.New("api_key_provider_sm: secretID is empty")
	}
	prj := strings.TrimSpace(p.ProjectID)
	if prj == "" {
		return "", errors.New("api_key_provider_sm: projectID is empty")
	}

	name := "projects/" + prj + "/secrets/" + sid + "/versions/latest"
	resp, err := p.SM.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("api_key_provider_sm: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("api_key_provider_sm: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
