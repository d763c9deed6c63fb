// Package system provides process-wide plumbing shared by the operator and
// the CLI: zap logger construction and common structured-logging helpers.
package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger constructs the process logger. Production config by default,
// development config in debug mode; stacktraces below fatal are disabled to
// keep WARN/ERROR lines readable, and timestamps are RFC3339 in UTC.
func BuildLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return logger, nil
}

// NamespacedFields returns key/value pairs for SugaredLogger calls naming a
// peering object: "cluster-wide" when the namespace is empty, otherwise the
// namespace is included.
func NamespacedFields(name, namespace string) []interface{} {
	if namespace == "" {
		return []interface{}{"peering", name, "scope", "cluster-wide"}
	}
	return []interface{}{"peering", name, "namespace", namespace}
}
