package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// csvCommentChar marks skipped lines in the match file.
const csvCommentChar = '#'

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config stores runtime configuration for the report run.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	LogLevel                logging.Level
	StoreDriver             string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBAutoMigrate           bool
	MigrationsDir           string
	CSVPath                 string
	CSVDelimiter            rune
	CSVHasHeader            bool
	ImportEnabled           bool
	ReportFormat            string
	UptraceEnabled          bool
	UptraceDSN              string
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storeDriver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreMemory)))
	if storeDriver != StoreMemory && storeDriver != StorePostgres {
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", storeDriver, StoreMemory, StorePostgres)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeDriver == StorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbAutoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}

	csvDelimiter, err := parseDelimiter(getEnv("CSV_DELIMITER", ";"))
	if err != nil {
		return Config{}, err
	}
	csvHasHeader, err := strconv.ParseBool(getEnv("CSV_HAS_HEADER", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CSV_HAS_HEADER: %w", err)
	}
	importEnabled, err := strconv.ParseBool(getEnv("IMPORT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_ENABLED: %w", err)
	}

	reportFormat := strings.ToLower(strings.TrimSpace(getEnv("REPORT_FORMAT", FormatText)))
	if reportFormat != FormatText && reportFormat != FormatJSON {
		return Config{}, fmt.Errorf("invalid REPORT_FORMAT %q: valid values are %s, %s", reportFormat, FormatText, FormatJSON)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	return Config{
		AppEnv:                  appEnv,
		ServiceName:             strings.TrimSpace(getEnv("SERVICE_NAME", "premier-league-report")),
		ServiceVersion:          strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		LogLevel:                parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StoreDriver:             storeDriver,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBAutoMigrate:           dbAutoMigrate,
		MigrationsDir:           strings.TrimSpace(getEnv("MIGRATIONS_DIR", "")),
		CSVPath:                 strings.TrimSpace(getEnv("CSV_PATH", "PremierLeague.csv")),
		CSVDelimiter:            csvDelimiter,
		CSVHasHeader:            csvHasHeader,
		ImportEnabled:           importEnabled,
		ReportFormat:            reportFormat,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseDelimiter(v string) (rune, error) {
	if v == `\t` || strings.EqualFold(v, "tab") {
		return '\t', nil
	}
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("invalid CSV_DELIMITER %q: expected a single character", v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	if r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid CSV_DELIMITER %q", v)
	}
	if r == csvCommentChar {
		return 0, fmt.Errorf("invalid CSV_DELIMITER %q: reserved for comment lines", v)
	}
	return r, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
