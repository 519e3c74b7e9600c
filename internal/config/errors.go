package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the kind of every configuration failure.
// Missing credentials are not reported with it; they surface as remote call
// failures because the loader performs no existence check.
var ErrConfiguration = errors.New("configuration error")

// Configuration validation errors returned by Config.Validate().
// Each wraps ErrConfiguration.
var (
	// ErrNoInputPath is returned when the input image path is empty.
	ErrNoInputPath = fmt.Errorf("%w: input image path is empty", ErrConfiguration)

	// ErrNoOutputPath is returned when the output image path is empty.
	ErrNoOutputPath = fmt.Errorf("%w: output image path is empty", ErrConfiguration)

	// ErrNoModel is returned when the detection or recognition model selector is empty.
	ErrNoModel = fmt.Errorf("%w: detection and recognition models are required", ErrConfiguration)

	// ErrNoAPIVersion is returned when the API version is empty.
	ErrNoAPIVersion = fmt.Errorf("%w: API version is empty", ErrConfiguration)
)
