package googleauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

var ErrNoAudiences = errors.New("no google client ids configured")

// Identity is what a verified Google ID token tells us about the signer.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier accepts ID tokens issued to any of the configured client ids
// (web, android and ios apps each have their own).
type Verifier struct {
	audiences []string
	validate  validateFunc
}

func New(audiences []string) *Verifier {
	return &Verifier{audiences: audiences, validate: idtoken.Validate}
}

func (v *Verifier) Enabled() bool {
	return len(v.audiences) > 0
}

func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if !v.Enabled() {
		return nil, ErrNoAudiences
	}
	var lastErr error
	for _, aud := range v.audiences {
		payload, err := v.validate(ctx, token, aud)
		if err != nil {
			lastErr = err
			continue
		}
		return identityFromClaims(payload), nil
	}
	return nil, fmt.Errorf("while validating ID token: %w", lastErr)
}

func identityFromClaims(p *idtoken.Payload) *Identity {
	id := &Identity{Subject: p.Subject}
	if email, ok := p.Claims["email"].(string); ok {
		id.Email = strings.ToLower(strings.TrimSpace(email))
	}
	switch v := p.Claims["email_verified"].(type) {
	case bool:
		id.EmailVerified = v
	case string:
		id.EmailVerified = v == "true"
	}
	if name, ok := p.Claims["name"].(string); ok {
		id.Name = name
	}
	return id
}
