package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the daemon configuration. Values are read from a YAML file
// and may be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains the control API server settings
	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"    yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"   yaml:"readHeaderTimeout"`
		// WriteTimeout does not apply to the frame stream, which is hijacked.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m"  yaml:"writeTimeout"`
		IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT"  env-default:"2m"  yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"   env-default:"10s" yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES"  env-default:"0"   yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; empty allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// Pprof mounts /debug/pprof when true.
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"handi"     yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"handi"     yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"handi"     yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. PublicKey verifies API tokens and
	// PrivateKey is only needed by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// MIDI configures the output port and the control change limiter.
	MIDI struct {
		// Port is matched against output port names, exactly first and then by substring.
		Port string `env:"MIDI_PORT" env-default:"Python to VCV 1" yaml:"port"`
		// Driver is rtmidi for a real port or log for a dry run.
		Driver string `env:"MIDI_DRIVER" env-default:"rtmidi" yaml:"driver"`
		// CCRate is the number of control change messages allowed per second.
		CCRate  float64 `env:"MIDI_CC_RATE"  env-default:"200" yaml:"ccRate"`
		CCBurst int     `env:"MIDI_CC_BURST" env-default:"32"  yaml:"ccBurst"`
	} `yaml:"midi"`

	// Tracker configures frame ingestion and hand selection.
	Tracker struct {
		// Zero is meaningful for these fields, so their defaults are set in
		// setDefaults instead of env-default.

		// UDPAddr is where the tracker sends frame datagrams; empty disables UDP.
		UDPAddr string `env:"TRACKER_UDP_ADDR" yaml:"udpAddr"`
		// Camera selects frames of one camera; -1 accepts any.
		Camera        int     `env:"TRACKER_CAMERA"         yaml:"camera"`
		MinConfidence float64 `env:"TRACKER_MIN_CONFIDENCE" yaml:"minConfidence"`
		QueueSize     int     `env:"TRACKER_QUEUE_SIZE"     yaml:"queueSize"`
		// Hand is any, left or right.
		Hand string `env:"TRACKER_HAND" env-default:"any" yaml:"hand"`
	} `yaml:"tracker"`

	// Worker configures the background render queue.
	Worker struct {
		MaxWorkers  int `env:"WORKER_MAX_WORKERS"  env-default:"4" yaml:"maxWorkers"`
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// Takes configures recording and rendering of takes.
	Takes struct {
		BPM             float64 `env:"TAKES_BPM"               env-default:"120"    yaml:"bpm"`
		TicksPerQuarter uint16  `env:"TAKES_TICKS_PER_QUARTER" env-default:"480"    yaml:"ticksPerQuarter"`
		// MaxEvents stops recording new events once reached.
		MaxEvents int `env:"TAKES_MAX_EVENTS" env-default:"100000" yaml:"maxEvents"`
	} `yaml:"takes"`

	// Tracing samples spans and logs the slow ones. Zero is meaningful for
	// both fields, so their defaults are set in setDefaults.
	Tracing struct {
		// SampleRatio is the fraction of frames traced, in [0, 1].
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" yaml:"sampleRatio"`
		// SlowSpan is the duration from which a span is logged; zero disables it.
		SlowSpan time.Duration `env:"TRACING_SLOW_SPAN" yaml:"slowSpan"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	cfg.setDefaults()
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults fills the fields that cleanenv would otherwise reset when the
// file sets them to zero.
func (c *Config) setDefaults() {
	c.Tracker.UDPAddr = ":9870"
	c.Tracker.Camera = -1
	c.Tracker.MinConfidence = 0.5
	c.Tracker.QueueSize = 2
	c.Tracing.SampleRatio = 1
	c.Tracing.SlowSpan = 20 * time.Millisecond
}

// Validate checks values that cleanenv cannot constrain.
func (c *Config) Validate() error {
	switch c.MIDI.Driver {
	case "rtmidi", "log":
	default:
		return fmt.Errorf("invalid midi driver %q", c.MIDI.Driver)
	}
	switch c.Tracker.Hand {
	case "any", "left", "right":
	default:
		return fmt.Errorf("invalid tracker hand %q", c.Tracker.Hand)
	}
	if c.Tracker.MinConfidence < 0 || c.Tracker.MinConfidence > 1 {
		return fmt.Errorf("tracker min confidence %v out of [0, 1]", c.Tracker.MinConfidence)
	}
	if c.Tracker.QueueSize < 1 {
		return fmt.Errorf("tracker queue size must be positive")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio %v out of [0, 1]", c.Tracing.SampleRatio)
	}
	if c.Takes.BPM <= 0 || c.Takes.TicksPerQuarter == 0 {
		return fmt.Errorf("takes bpm and ticks per quarter must be positive")
	}

	return nil
}
