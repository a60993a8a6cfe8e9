package canvas

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CredentialsEnv holds a JSON object of tokens when no credentials file is given.
const CredentialsEnv = "CANVAS_API_CRED"

// Credentials maps a server type (e.g. "production", "test") to its API token.
type Credentials map[string]string

// LoadCredentials reads tokens from the JSON file at path, or from $CANVAS_API_CRED when path is
// empty.
func LoadCredentials(path string) (Credentials, error) {
	var raw []byte
	var source string

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("canvas: couldn't read credentials file %s: %w", path, err)
		}
		raw = b
		source = path
	} else {
		env, ok := os.LookupEnv(CredentialsEnv)
		if !ok || strings.TrimSpace(env) == "" {
			return nil, fmt.Errorf("canvas: environment variable %s is missing", CredentialsEnv)
		}
		raw = []byte(env)
		source = "$" + CredentialsEnv
	}

	creds := Credentials{}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("canvas: %s contains invalid JSON: %w", source, err)
	}

	return creds, nil
}

// Token returns the token stored for serverType.
func (c Credentials) Token(serverType string) (string, error) {
	token, ok := c[serverType]
	if !ok {
		return "", fmt.Errorf("canvas: credentials do not contain server type '%s'", serverType)
	}
	if token == "" {
		return "", fmt.Errorf("canvas: token for server type '%s' is empty", serverType)
	}
	return token, nil
}
