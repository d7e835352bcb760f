package config

import "time"

// Env key constants. Duration values support explicit units (e.g. 30s, 1m).

// Cloud project used in every reservation call.
const envKeyProjectID = "PROJECT_ID"

// Zone used in every reservation call (e.g. us-central1-a).
const envKeyZone = "ZONE"

// Name of the reservation to observe, create and resize.
const envKeyReservationID = "RESERVATION_ID"

// Desired final VM count of the reservation.
const (
	envKeyTargetVMCount     = "TARGET_VM_COUNT"
	envDefaultTargetVMCount = "1"
)

// Machine type used when the reservation is created (e.g. n2-standard-2).
const envKeyMachineType = "MACHINE_TYPE"

// Bind host of the status page.
const (
	envKeyHostName     = "HOST_NAME"
	envDefaultHostName = "0.0.0.0"
)

// Bind port of the status page.
const (
	envKeyPort     = "PORT"
	envDefaultPort = "8080"
)

// Port for Prometheus metrics and probes (GET /metrics, /-/healthz, /-/readyz).
const (
	envKeyMetricsPort     = "METRICS_PORT"
	envDefaultMetricsPort = "9090"
)

// Wait between two create/resize attempts. Units: s, m, h (e.g. 30s).
const (
	envKeyReconcileInterval     = "RECONCILE_INTERVAL"
	envDefaultReconcileInterval = "30s"
	envMinReconcileInterval     = time.Second
)

// How a failed reservation fetch is treated: assume-empty or skip.
const (
	envKeyFetchErrorPolicy     = "FETCH_ERROR_POLICY"
	envDefaultFetchErrorPolicy = "assume-empty"
)

// Upper bound for graceful shutdown. Units: s, m, h (e.g. 5s).
const (
	envKeyShutdownTimeout     = "SHUTDOWN_TIMEOUT"
	envDefaultShutdownTimeout = "5s"
	envMinShutdownTimeout     = time.Second
)

// Log level: debug, info, warn, error.
const (
	envKeyLogLevel     = "LOG_LEVEL"
	envDefaultLogLevel = "info"
)

// Log format: json or text.
const (
	envKeyLogFormat     = "LOG_FORMAT"
	envDefaultLogFormat = "json"
)

// Static fields added to every log line, as k=v,k=v.
const envKeyLogLabels = "LOG_LABELS"

// Optional dotenv file loaded before reading the environment; a missing file is ignored.
const (
	envKeyEnvFile     = "ENV_FILE"
	envDefaultEnvFile = ".env"
)
