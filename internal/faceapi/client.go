package faceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/nao1215/facescan/internal/config"
	"github.com/nao1215/facescan/internal/log"
	"github.com/nao1215/facescan/internal/model"
)

// Request headers used for correlation with service-side logs.
const (
	clientRequestIDHeader = "x-ms-client-request-id"
	apimRequestIDHeader   = "apim-request-id"
)

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 64 << 10

// Client calls the face detect operation.
// It holds no connection state and may be reused for several calls.
type Client struct {
	endpoint         string
	httpClient       *http.Client
	logger           *slog.Logger
	detectionModel   string
	recognitionModel string
	apiVersion       string
	newRequestID     func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
// The client is copied; its transport is wrapped, not replaced.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for request and response diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDetectionModel overrides the detection model name.
func WithDetectionModel(name string) Option {
	return func(c *Client) {
		c.detectionModel = name
	}
}

// WithRecognitionModel overrides the recognition model name.
func WithRecognitionModel(name string) Option {
	return func(c *Client) {
		c.recognitionModel = name
	}
}

// WithAPIVersion overrides the API version path segment, e.g. "v1.2".
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// NewClient creates a Client for the given credentials.
//
// No network I/O happens here and the credentials are not checked: an empty
// endpoint fails on the first Detect call, and an empty or wrong key is
// rejected by the service.
func NewClient(creds config.Credentials, opts ...Option) *Client {
	c := &Client{
		endpoint:         creds.Endpoint,
		httpClient:       &http.Client{},
		logger:           log.NewDiscardLogger(),
		detectionModel:   config.DefaultDetectionModel,
		recognitionModel: config.DefaultRecognitionModel,
		apiVersion:       config.DefaultAPIVersion,
		newRequestID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = withAPIKey(c.httpClient, creds.Key)
	return c
}

// Detect sends image to the service and returns the faces it reports,
// in service order. attrs selects the attribute categories to return.
// The call blocks until a response arrives or ctx is done.
func (c *Client) Detect(ctx context.Context, attrs []model.Attribute, image []byte) ([]model.DetectedFace, error) {
	endpoint, err := c.detectURL(attrs)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrRemoteCall, err)
	}
	requestID := c.newRequestID()
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(clientRequestIDHeader, requestID)

	c.logger.Debug("sending detect request",
		"url", endpoint,
		"request_id", requestID,
		"bytes", len(image),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteCall, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if id := resp.Header.Get(apimRequestIDHeader); id != "" {
		requestID = id
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := parseRemoteError(resp, requestID)
		c.logger.Debug("detect request rejected",
			"status", resp.StatusCode,
			"code", remoteErr.Code,
			"request_id", requestID,
		)
		return nil, remoteErr
	}

	var dtos []detectedFaceDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response (request id %s): %w", ErrRemoteCall, requestID, err)
	}

	faces := toModel(dtos)
	c.logger.Debug("detect request completed",
		"status", resp.StatusCode,
		"faces", len(faces),
		"request_id", requestID,
	)
	return faces, nil
}

// detectURL builds {endpoint}/face/{version}/detect with the query parameters.
func (c *Client) detectURL(attrs []model.Attribute) (string, error) {
	if strings.TrimSpace(c.endpoint) == "" {
		return "", fmt.Errorf("%w: endpoint is not configured", ErrRemoteCall)
	}

	base, err := url.Parse(strings.TrimSpace(c.endpoint))
	if err != nil {
		return "", fmt.Errorf("%w: invalid endpoint: %w", ErrRemoteCall, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return "", fmt.Errorf("%w: invalid endpoint %q: expected an http or https URL", ErrRemoteCall, c.endpoint)
	}

	u := base.JoinPath("face", c.apiVersion, "detect")

	q := url.Values{}
	q.Set("detectionModel", c.detectionModel)
	q.Set("recognitionModel", c.recognitionModel)
	q.Set("returnFaceId", "false")
	if len(attrs) > 0 {
		q.Set("returnFaceAttributes", model.JoinAttributes(attrs))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// parseRemoteError reads the error envelope of a failed response.
func parseRemoteError(resp *http.Response, requestID string) *RemoteError {
	remoteErr := &RemoteError{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var envelope errorBodyDTO
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
			remoteErr.Code = envelope.Error.Code
			remoteErr.Message = envelope.Error.Message
		}
	}
	if remoteErr.Message == "" {
		remoteErr.Message = http.StatusText(resp.StatusCode)
	}
	return remoteErr
}
