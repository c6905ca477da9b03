// Package testutil provides common utility functions for testing.
package testutil

import (
	"net/url"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger returns a logger that writes to the test log at debug level, so
// output only shows up for failing or verbose runs.
func Logger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.Level(zapcore.DebugLevel))
}

// Fields builds a field map from alternating names and values.
// A trailing name without a value is ignored.
func Fields(pairs ...string) map[string]string {
	fields := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = pairs[i+1]
	}
	return fields
}

// Form builds url.Values from alternating names and values.
func Form(pairs ...string) url.Values {
	values := url.Values{}
	for name, value := range Fields(pairs...) {
		values.Set(name, value)
	}
	return values
}
