package config

import (
	"errors"
	"flag"
	"strconv"
	"strings"
	"time"
)

// ByteSize holds a byte count parsed from a human-readable size string.
// It implements the flag.Value and encoding.TextUnmarshaler interfaces, so
// the same syntax works for flags, environment variables, and JSON.
type ByteSize int64

// Size suffix multipliers accepted by [ByteSize.Set].
const (
	sizeKB = 1 << 10
	sizeMB = 1 << 20
	sizeGB = 1 << 30
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-state client state file path
//	-c/-config json file path with configs
//	-poll-interval clipboard poll interval (e.g., "1s", "500ms")
//	-max-text-size stored text size cap (e.g., "1MB", "512KB", "1048576")
//	-preview-length history preview length in runes
//	-default-session name of the auto-created session
//	-token-sign-key remember-me token signing key
//	-token-issuer remember-me token issuer name
//	-token-duration remember-me token duration (e.g., "720h")
//	-log-level minimum log level
func ParseFlags() *StructuredConfig {
	var databasePath string
	var statePath string
	var jsonConfigPath string
	var pollInterval time.Duration
	var maxTextSize ByteSize
	var previewLength int
	var defaultSession string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var logLevel string

	flag.StringVar(&databasePath, "d", "", "Database file path")
	flag.StringVar(&statePath, "state", "", "Client state file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Clipboard poll interval (e.g., 1s, 500ms)")
	flag.Var(&maxTextSize, "max-text-size", "Stored text size cap (e.g., 1MB, 512KB)")
	flag.IntVar(&previewLength, "preview-length", 0, "History preview length in runes")
	flag.StringVar(&defaultSession, "default-session", "", "Name of the auto-created session")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			DefaultSessionName: defaultSession,
			PreviewLength:      previewLength,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB: DB{
				Path: databasePath,
			},
			State: State{
				Path: statePath,
			},
		},
		Monitor: Monitor{
			PollInterval: pollInterval,
			MaxTextSize:  maxTextSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String renders the byte count in the most compact suffixed form
// ("2GB", "1MB", "512KB") and falls back to a plain byte count when the
// value does not divide evenly.
func (s *ByteSize) String() string {
	v := int64(*s)
	switch {
	case v == 0:
		return "0"
	case v%sizeGB == 0:
		return strconv.FormatInt(v/sizeGB, 10) + "GB"
	case v%sizeMB == 0:
		return strconv.FormatInt(v/sizeMB, 10) + "MB"
	case v%sizeKB == 0:
		return strconv.FormatInt(v/sizeKB, 10) + "KB"
	default:
		return strconv.FormatInt(v, 10)
	}
}

// Set parses the input string as a byte size and populates the ByteSize.
// Accepted forms: a plain byte count ("1048576") or an integer with a
// B/KB/MB/GB suffix ("1MB", "512KB", case-insensitive). Negative and
// malformed values are rejected.
func (s *ByteSize) Set(value string) error {
	input := strings.TrimSpace(strings.ToUpper(value))
	if input == "" {
		return errors.New("need size in a form `<number>[B|KB|MB|GB]`")
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(input, "GB"):
		multiplier, input = sizeGB, strings.TrimSuffix(input, "GB")
	case strings.HasSuffix(input, "MB"):
		multiplier, input = sizeMB, strings.TrimSuffix(input, "MB")
	case strings.HasSuffix(input, "KB"):
		multiplier, input = sizeKB, strings.TrimSuffix(input, "KB")
	case strings.HasSuffix(input, "B"):
		input = strings.TrimSuffix(input, "B")
	}

	count, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return err
	}

	if count < 0 {
		return errors.New("size is a non-negative integer")
	}

	*s = ByteSize(count * multiplier)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler so caarlos0/env can
// parse ByteSize fields directly from environment variables.
func (s *ByteSize) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
