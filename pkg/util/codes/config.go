package codes

import "github.com/orienta-pe/orienta_backend/config"

// Config holds settings for various code generation utilities
type Config struct {

	// TokenByteLength is the number of random bytes for tokens
	TokenByteLength int

	// URLSafeTokens determines whether to use URL-safe base64 encoding
	URLSafeTokens bool

	// Charset is the character set used for alphanumeric codes
	// If empty, defaults to uppercase alphanumeric
	Charset string

	// JoinCodeMaxAttempts bounds the uniqueness retry loop when
	// generating join codes
	JoinCodeMaxAttempts int
}

// DefaultConfig returns sensible defaults for code generation
func DefaultConfig() Config {
	return Config{
		TokenByteLength:     16,
		URLSafeTokens:       true,
		Charset:             charsetJoinCode,
		JoinCodeMaxAttempts: 5,
	}
}

// GetCharset returns the configured charset or the default if empty
func (c Config) GetCharset() string {
	if c.Charset == "" {
		return charsetJoinCode
	}
	return c.Charset
}

// GetJoinCodeMaxAttempts returns the configured retry bound or the default
func (c Config) GetJoinCodeMaxAttempts() int {
	if c.JoinCodeMaxAttempts < 1 {
		return 5
	}
	return c.JoinCodeMaxAttempts
}

// FromCentralConfig converts central config.CodesConfig to package Config
func FromCentralConfig(c config.CodesConfig) Config {
	return Config{
		TokenByteLength:     c.TokenByteLength,
		URLSafeTokens:       c.URLSafeTokens,
		Charset:             c.Charset,
		JoinCodeMaxAttempts: c.JoinCodeMaxAttempts,
	}
}
