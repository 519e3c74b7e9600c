// Package log provides the application's slog setup.
//
// Every logger built here is wrapped in a SecureHandler, which masks the
// face service key wherever it might surface: as an attribute named after
// the Ocp-Apim-Subscription-Key header or the AI_SERVICE_KEY variable,
// as a bare 32 character key value, or inside a logged http.Header.
//
// Logs go to stderr so that stdout carries only the detection report.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("sending request", "header", req.Header) // key is masked
package log
