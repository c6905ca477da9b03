// Package constants provides shared constants for the finance-calculator application.
package constants

// Financial constants
const (
	// DecimalPlaces is the number of fractional digits shown for currency amounts
	DecimalPlaces = 2

	// MaxIntegerDigits bounds the digits before the decimal point of a numeric input
	MaxIntegerDigits = 28

	// MaxFractionDigits bounds the digits after the decimal point of a numeric input
	MaxFractionDigits = 28

	// DivisionPrecision is the number of fractional digits kept by a division
	// before the final rounding to DecimalPlaces. It exceeds any scale reachable
	// from bounded inputs, so that rounding never decides a currency digit.
	DivisionPrecision = 40
)

// Installment calculator limits
const (
	// MinInstallmentMonths is the shortest allowed installment term
	MinInstallmentMonths = 2

	// MaxInstallmentMonths is the longest allowed installment term
	MaxInstallmentMonths = 12
)

// InstallmentRates lists the only annual rates (in percent) offered for installments.
var InstallmentRates = []int64{13, 15}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Cache backend constants
const (
	// CacheBackendNone disables result caching
	CacheBackendNone = "none"

	// CacheBackendMemory keeps results in process memory
	CacheBackendMemory = "memory"

	// CacheBackendRedis stores results in Redis
	CacheBackendRedis = "redis"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment variable overrides (e.g. FINCALC_SERVER_ADDRESS)
	EnvPrefix = "FINCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxFormSizeBytes is the default maximum size of a submitted form (64 KB)
	DefaultMaxFormSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10

	// DefaultRateLimitRequests is the default number of requests per client per window
	DefaultRateLimitRequests = 60

	// DefaultRateLimitWindowSeconds is the default rate limit refill window
	DefaultRateLimitWindowSeconds = 60

	// DefaultCacheEntries bounds the in-memory result cache
	DefaultCacheEntries = 1024

	// DefaultCacheTTLSeconds is the default Redis entry lifetime
	DefaultCacheTTLSeconds = 3600
)
