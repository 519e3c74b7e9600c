package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "facescan"

	// DefaultInputPath is the image analyzed by every run, relative to the
	// working directory.
	DefaultInputPath = "people.jpg"

	// DefaultOutputPath is the annotated image written by every run.
	// An existing file with this name is overwritten.
	DefaultOutputPath = "faces_detected.jpg"

	// DefaultDetectionModel selects the service's detection algorithm.
	// detection_03 is the model that supports head pose, blur and mask.
	DefaultDetectionModel = "detection_03"

	// DefaultRecognitionModel selects the service's recognition algorithm.
	// Face IDs are never requested, so it only has to be a valid selector.
	DefaultRecognitionModel = "recognition_04"

	// DefaultAPIVersion is the path segment of the detect endpoint.
	DefaultAPIVersion = "v1.2"

	// DefaultEnvFile is the env file looked up in the working directory.
	DefaultEnvFile = ".env"
)

// Config holds all configuration of one facescan run.
// It is populated once at startup and passed down explicitly.
type Config struct {
	// Credentials authenticate the detection client.
	// They are not validated; bad values surface on the first detection call.
	Credentials Credentials

	// InputPath is the image to analyze.
	InputPath string

	// OutputPath is where the annotated image is written.
	OutputPath string

	// DetectionModel and RecognitionModel are opaque selectors for the
	// service's internal algorithms.
	DetectionModel   string
	RecognitionModel string

	// APIVersion is the version segment of the detect endpoint path.
	APIVersion string

	// Verbose enables debug log output.
	Verbose bool
}

// NewConfig creates a new Config with default values and empty credentials.
func NewConfig() *Config {
	return &Config{
		InputPath:        DefaultInputPath,
		OutputPath:       DefaultOutputPath,
		DetectionModel:   DefaultDetectionModel,
		RecognitionModel: DefaultRecognitionModel,
		APIVersion:       DefaultAPIVersion,
	}
}

// Validate checks the hardcoded parts of the configuration.
// Credentials are not checked here: a missing key or endpoint
// is reported by the service on the detection call.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInputPath
	}
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if c.DetectionModel == "" || c.RecognitionModel == "" {
		return ErrNoModel
	}
	if c.APIVersion == "" {
		return ErrNoAPIVersion
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for facescan.
// On Linux: ~/.config/facescan
// On macOS: ~/Library/Application Support/facescan
// On Windows: %APPDATA%\facescan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultEnvFiles returns the env files seeded into the environment, in
// precedence order: .env in the working directory, then .env in the XDG
// config directory. Values from an earlier file win.
func DefaultEnvFiles() []string {
	return []string{
		DefaultEnvFile,
		filepath.Join(XDGConfigDir(), DefaultEnvFile),
	}
}
