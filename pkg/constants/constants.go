// Package constants provides shared constants for the lease-fees application.
package constants

// DateLayout is the canonical calendar date format used for output and for
// normalized dates in API responses.
const DateLayout = "2006-01-02"

// Fee constants
const (
	// DaysPerWeek is the number of days in a week
	DaysPerWeek = 7

	// RoundUpRemainderDays is the number of leftover days (after complete weeks)
	// at which the remaining period counts as one more week.
	RoundUpRemainderDays = 5

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// AdvanceRentWeeks is the number of weeks of rent paid in advance
	AdvanceRentWeeks = 2

	// BondThreshold is the highest weekly rent that still attracts the lower bond
	BondThreshold = 800.0

	// BondWeeksStandard is the bond in weeks of rent at or below BondThreshold
	BondWeeksStandard = 4

	// BondWeeksHigh is the bond in weeks of rent above BondThreshold
	BondWeeksHigh = 6

	// GSTRate is the goods and services tax applied to rent in reletting fees
	GSTRate = 0.10

	// EffectiveTermRatio is the share of the agreed term used as the pro-rata
	// denominator for advertising and reletting fees.
	EffectiveTermRatio = 0.75

	// DefaultLettingFeeMultiplier is the letting fee in weeks of GST-inclusive rent
	DefaultLettingFeeMultiplier = 2.0

	// MaxLettingFeeMultiplier is the upper bound for a supplied letting fee multiplier
	MaxLettingFeeMultiplier = 2.0
)

// Agreed term lengths in weeks
const (
	TermSixMonths  = 26
	TermOneYear    = 52
	TermTwoYears   = 104
	TermThreeYears = 156
	DefaultTerm    = TermOneYear
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "LEASE_FEES"
)

// Form store constants
const (
	// StoreDriverMemory keeps form state for the life of the process
	StoreDriverMemory = "memory"

	// StoreDriverSQLite keeps form state in a local SQLite database
	StoreDriverSQLite = "sqlite"

	// StoreDriverRedis keeps form state in Redis
	StoreDriverRedis = "redis"

	// DefaultStorePath is the default SQLite database file
	DefaultStorePath = "lease-fees.db"

	// DefaultRedisAddr is the default Redis address
	DefaultRedisAddr = "localhost:6379"

	// DefaultStoreKeyPrefix namespaces form state keys
	DefaultStoreKeyPrefix = "lease-fees:form"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = "10s"

	// DefaultWriteTimeout is the default HTTP write timeout
	DefaultWriteTimeout = "10s"
)
