package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/nao1215/facescan/internal/log"
)

// Environment variable names holding the service credentials.
const (
	EnvServiceKey      = "AI_SERVICE_KEY"
	EnvServiceEndpoint = "AI_SERVICE_ENDPOINT"
)

// Credentials are the two values needed to reach the face-detection service.
// Both must be non-empty for a detection call to succeed; nothing else is checked.
type Credentials struct {
	// Key is the subscription key sent with every request.
	Key string

	// Endpoint is the base URL of the service resource.
	Endpoint string
}

// String implements fmt.Stringer without revealing the key.
func (c Credentials) String() string {
	key := "<empty>"
	if c.Key != "" {
		key = "<redacted>"
	}
	return fmt.Sprintf("Credentials{Endpoint: %q, Key: %s}", c.Endpoint, key)
}

// LogValue implements slog.LogValuer. It records the endpoint and whether a
// key is present, never the key itself.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.Bool("key_set", c.Key != ""),
	)
}

// LoadCredentials seeds the process environment from envFiles and then reads
// AI_SERVICE_KEY and AI_SERVICE_ENDPOINT.
//
// A variable already defined in the process environment is never replaced.
// Otherwise the first env file holding a non-empty value for it wins, so a
// blank entry in a local file does not hide a value from a later one.
// Missing files are skipped silently; files that cannot be read or parsed
// are skipped with a warning on logger.
//
// Missing or empty variables are returned as empty strings. Loading never
// fails; absent credentials surface later as a failed detection call.
func LoadCredentials(logger *slog.Logger, envFiles ...string) Credentials {
	if logger == nil {
		logger = log.NewDiscardLogger()
	}
	for key, value := range mergeEnvFiles(logger, envFiles) {
		if _, defined := os.LookupEnv(key); defined {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			logger.Warn("failed to set variable from env file", "variable", key, "error", err)
		}
	}

	return Credentials{
		Key:      os.Getenv(EnvServiceKey),
		Endpoint: os.Getenv(EnvServiceEndpoint),
	}
}

// mergeEnvFiles reads envFiles in order and keeps the first non-empty value
// seen for each variable.
func mergeEnvFiles(logger *slog.Logger, envFiles []string) map[string]string {
	merged := make(map[string]string)
	for _, file := range envFiles {
		vars, err := godotenv.Read(file)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping env file", "file", file, "error", err)
			}
			continue
		}
		for key, value := range vars {
			if value == "" {
				continue
			}
			if _, seen := merged[key]; !seen {
				merged[key] = value
			}
		}
	}
	return merged
}
