// Package profilefile stores club profiles as YAML documents on disk.
// Load never returns a profile that failed validation, and a document that
// smuggles credentials next to the integration settings is rejected outright.
package profilefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/pkg/validation"

	"gopkg.in/yaml.v3"
)

// Credential-shaped keys that must never appear in a stored profile.
var forbiddenRevSportKeys = []string{"username", "password", "apiKey", "api_key", "token", "secret"}

// Load reads, parses and fully validates the profile at path. All schema and
// policy violations are collected and returned together.
func Load(path string) (*profile.ClubProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p profile.ClubProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	violations := credentialViolations(data)
	if err := p.Validate(); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			violations = append(violations, errs...)
		} else {
			return nil, err
		}
	}
	if err := violations.ErrOrNil(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Save validates and writes the profile to path. An invalid profile is never
// written.
func Save(path string, p *profile.ClubProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return SaveDraft(path, p)
}

// SaveDraft writes the profile without the validation gate. Used for
// generator output, which intentionally fails full validation until the
// integration endpoint is filled in.
func SaveDraft(path string, p *profile.ClubProfile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}

// credentialViolations scans the raw document for credential fields under
// revSport. The profile type cannot carry them, so a typed unmarshal would
// silently drop such keys; their presence in the document is itself a policy
// violation.
func credentialViolations(data []byte) validation.Errors {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}

	revSport, ok := raw["revSport"].(map[string]interface{})
	if !ok {
		return nil
	}

	var violations validation.Errors
	for key := range revSport {
		for _, forbidden := range forbiddenRevSportKeys {
			if strings.EqualFold(key, forbidden) {
				violations = append(violations, validation.Violation{
					Field:   "revSport." + key,
					Code:    validation.CodePolicy,
					Message: "credentials must not be stored in the profile; source them at runtime",
				})
			}
		}
	}
	return violations
}
