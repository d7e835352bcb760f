package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/logging"
	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

type Config struct {
	ProjectID         string
	Zone              string
	ReservationID     string
	TargetVMCount     int64
	MachineType       string
	HostName          string
	Port              string
	MetricsPort       string
	ReconcileInterval time.Duration
	FetchErrorPolicy  controller.FetchErrorPolicy
	ShutdownTimeout   time.Duration
	LogLevel          string
	LogFormat         string
	LogLabels         map[string]string
}

// Load reads the configuration from the environment, after loading the optional dotenv file.
// Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	envFile := getEnvOrDefault(envKeyEnvFile, envDefaultEnvFile)

	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	cfg := &Config{
		ProjectID:     os.Getenv(envKeyProjectID),
		Zone:          os.Getenv(envKeyZone),
		ReservationID: os.Getenv(envKeyReservationID),
		MachineType:   os.Getenv(envKeyMachineType),
		HostName:      getEnvOrDefault(envKeyHostName, envDefaultHostName),
		Port:          getEnvOrDefault(envKeyPort, envDefaultPort),
		MetricsPort:   getEnvOrDefault(envKeyMetricsPort, envDefaultMetricsPort),
		LogLevel:      getEnvOrDefault(envKeyLogLevel, envDefaultLogLevel),
		LogFormat:     getEnvOrDefault(envKeyLogFormat, envDefaultLogFormat),
	}

	err = requireNonEmpty(map[string]string{
		envKeyProjectID:     cfg.ProjectID,
		envKeyZone:          cfg.Zone,
		envKeyReservationID: cfg.ReservationID,
		envKeyMachineType:   cfg.MachineType,
	})
	if err != nil {
		return nil, err
	}

	cfg.TargetVMCount, err = parseCount(envKeyTargetVMCount, getEnvOrDefault(envKeyTargetVMCount, envDefaultTargetVMCount))
	if err != nil {
		return nil, err
	}

	cfg.ReconcileInterval, err = parseDuration(
		envKeyReconcileInterval,
		getEnvOrDefault(envKeyReconcileInterval, envDefaultReconcileInterval),
		envMinReconcileInterval,
	)
	if err != nil {
		return nil, err
	}

	cfg.ShutdownTimeout, err = parseDuration(
		envKeyShutdownTimeout,
		getEnvOrDefault(envKeyShutdownTimeout, envDefaultShutdownTimeout),
		envMinShutdownTimeout,
	)
	if err != nil {
		return nil, err
	}

	cfg.FetchErrorPolicy, err = controller.ParseFetchErrorPolicy(
		getEnvOrDefault(envKeyFetchErrorPolicy, envDefaultFetchErrorPolicy),
	)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envKeyFetchErrorPolicy, err)
	}

	cfg.LogLabels, err = logging.ParseLabels(os.Getenv(envKeyLogLabels))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envKeyLogLabels, err)
	}

	return cfg, nil
}

// Target returns the reservation the controller drives towards.
func (c *Config) Target() controller.Target {
	return controller.Target{
		ProjectID:   c.ProjectID,
		Zone:        c.Zone,
		Name:        c.ReservationID,
		Count:       c.TargetVMCount,
		MachineType: c.MachineType,
	}
}

func requireNonEmpty(values map[string]string) error {
	var errs error

	for _, key := range []string{envKeyProjectID, envKeyZone, envKeyReservationID, envKeyMachineType} {
		if values[key] == "" {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", key, ErrMissingRequired))
		}
	}

	return errs
}

func parseCount(key, value string) (int64, error) {
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if count < 0 {
		return 0, fmt.Errorf("parse %s: %w: %d is negative", key, ErrInvalidValue, count)
	}

	return count, nil
}

func parseDuration(key, value string, minValue time.Duration) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("parse %s: %w: %s is below %s", key, ErrInvalidValue, d, minValue)
	}

	return d, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
