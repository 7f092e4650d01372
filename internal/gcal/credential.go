package gcal

import (
	"encoding/json"
	"fmt"

	"github.com/bilgisen/dayboard/internal/errs"
)

// Credential is a service-account identity used to mint short-lived tokens
// for the calendar API. It lives only in process memory.
type Credential struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	ProjectID   string `json:"project_id,omitempty"`
}

// ParseCredential decodes and validates a service-account JSON blob.
func ParseCredential(blob string) (Credential, error) {
	var cred Credential
	if err := json.Unmarshal([]byte(blob), &cred); err != nil {
		return Credential{}, fmt.Errorf("%w: %v", errs.ErrInvalidCredential, err)
	}
	if err := cred.Validate(); err != nil {
		return Credential{}, err
	}
	return cred, nil
}

// Validate checks the fields token minting cannot work without.
func (c Credential) Validate() error {
	if c.ClientEmail == "" {
		return fmt.Errorf("%w: missing client_email", errs.ErrInvalidCredential)
	}
	if c.PrivateKey == "" {
		return fmt.Errorf("%w: missing private_key", errs.ErrInvalidCredential)
	}
	return nil
}
