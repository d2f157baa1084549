package config

import "time"

// Engine defaults.
const (
	DefaultEngineScript       = "typescript.js"
	DefaultEngineLoadTimeout  = 30 * time.Second
	DefaultEngineCacheEntries = 4
	DefaultEngineVerifyKinds  = true
)

// Scanner defaults.
const (
	DefaultScannerSkipTrivia = true
)

// Logging defaults.
const (
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = FormatText
)

// Observability defaults.
const (
	DefaultOTLPInsecure = false
	DefaultSampleRatio  = 1.0
)
