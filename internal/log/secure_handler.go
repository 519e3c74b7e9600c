package log

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// sensitiveKeys contains attribute keys whose values are never written.
// Keys are compared in lower case.
var sensitiveKeys = map[string]bool{
	// HTTP headers understood by the face service and its gateway
	"ocp-apim-subscription-key": true,
	"authorization":             true,
	"x-api-key":                 true,
	"proxy-authorization":       true,

	// Environment variables
	"ai_service_key": true,

	// Generic names
	"key":              true,
	"api_key":          true,
	"apikey":           true,
	"api-key":          true,
	"subscription_key": true,
	"subscription-key": true,
	"access_token":     true,
}

// sensitiveKeywords are matched anywhere inside a lower-cased key.
// The bare word "key" is excluded here because "key_set" and similar are safe.
var sensitiveKeywords = []string{
	"password", "secret", "token", "subscription", "credential",
}

// sensitivePatterns flag a string value as secret regardless of its key.
var sensitivePatterns = []*regexp.Regexp{
	// Cognitive Services keys are 32 hex characters; longer alphanumeric runs are treated the same.
	regexp.MustCompile(`^[a-zA-Z0-9]{32,}$`),

	// Bearer tokens
	regexp.MustCompile(`(?i)^bearer\s+.+`),

	// Keys passed in a query string
	regexp.MustCompile(`(?i)subscription-key=[^&\s]+`),
}

// SecureHandler wraps an slog.Handler and masks secrets before they reach it.
// Attributes are masked when their key is sensitive, when their string value
// looks like a key, or when they carry an http.Header with sensitive fields.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes masked and added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitized := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitized[i] = sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitized)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func sanitizeAttr(a slog.Attr) slog.Attr {
	// LogValuer implementations (such as config.Credentials) are resolved first
	// so that their expanded attributes are checked too.
	a.Value = a.Value.Resolve()

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		sanitized := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			sanitized[i] = sanitizeAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitized...)}
	case slog.KindString:
		if isSensitiveValue(a.Value.String()) {
			return slog.String(a.Key, MaskValue)
		}
	case slog.KindAny:
		if header, ok := a.Value.Any().(http.Header); ok {
			return slog.Any(a.Key, sanitizeHeader(header))
		}
	}
	return a
}

// sanitizeHeader returns a copy of header with sensitive fields masked.
func sanitizeHeader(header http.Header) http.Header {
	out := header.Clone()
	for name := range out {
		if isSensitiveKey(name) {
			out[name] = []string{MaskValue}
		}
	}
	return out
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	if sensitiveKeys[lower] {
		return true
	}
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewSecureLogger creates a text slog.Logger that masks secrets.
// The level is Warn unless verbose is set, in which case it is Debug.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewDiscardLogger returns a logger that drops every record.
// Components use it when no logger was configured.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
