package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nthnn/SIM900/modem"
)

// Config holds the application configuration
type Config struct {
	// BindAddress is the address the server listens on (e.g. "0.0.0.0:8080")
	BindAddress string `yaml:"bind_address"`
	// SerialPort is the path to the modem's serial port (e.g. "/dev/ttyUSB0")
	SerialPort string `yaml:"serial_port"`
	// BaudRate is the baud rate for serial communication with the modem (e.g. 9600)
	BaudRate int `yaml:"baud_rate"`
	// SettleDelay is how long the modem is given to answer each command
	SettleDelay Duration `yaml:"settle_delay"`

	APN  APNConfig  `yaml:"apn"`
	Log  LogConfig  `yaml:"log"`
	MQTT MQTTConfig `yaml:"mqtt"`
}

// APNConfig enables GPRS at startup when Name is set
type APNConfig struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	// Level sets the logging level (e.g. "debug", "info", "warn", "error")
	Level string `yaml:"level"`
	// File additionally writes logs to a rotated file when set
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of old log files to keep
	MaxAge     int    `yaml:"max_age"`     // days
}

// MQTTConfig enables SMS intake over MQTT when Broker is set
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
// and validates the result
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.BindAddress = "0.0.0.0:8080"
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = modem.DefaultBaudRate
		c.SettleDelay = Duration(modem.DefaultSettleDelay)
		c.Log = LogConfig{Level: "info", MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		c.MQTT.ClientID = "sim900d"
		c.MQTT.Topic = "sms/send"
		return nil
	}
}

// WithFile overlays values from a YAML file. An empty path is ignored.
func WithFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
			c.BindAddress = addr
		}

		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if settle := os.Getenv("SETTLE_DELAY"); settle != "" {
			if d, err := time.ParseDuration(settle); err == nil {
				c.SettleDelay = Duration(d)
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.Log.Level = level
		}

		if file := os.Getenv("LOG_FILE"); file != "" {
			c.Log.File = file
		}

		envString(&c.APN.Name, "APN_NAME")
		envString(&c.APN.Username, "APN_USERNAME")
		envString(&c.APN.Password, "APN_PASSWORD")

		envString(&c.MQTT.Broker, "MQTT_BROKER")
		envString(&c.MQTT.ClientID, "MQTT_CLIENT_ID")
		envString(&c.MQTT.Topic, "MQTT_TOPIC")
		envString(&c.MQTT.Username, "MQTT_USERNAME")
		envString(&c.MQTT.Password, "MQTT_PASSWORD")

		return nil
	}
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bind-address":
				c.BindAddress = f.Value.String()
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "settle-delay":
				if d, err := time.ParseDuration(f.Value.String()); err == nil {
					c.SettleDelay = Duration(d)
				}
			case "log-level":
				c.Log.Level = f.Value.String()
			case "log-file":
				c.Log.File = f.Value.String()
			case "apn":
				c.APN.Name = f.Value.String()
			case "mqtt-broker":
				c.MQTT.Broker = f.Value.String()
			case "mqtt-topic":
				c.MQTT.Topic = f.Value.String()
			}
		})
		return nil
	}
}

// Validate checks the configuration for values the daemon cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.SerialPort == "" {
		errs = append(errs, errors.New("serial port is required"))
	}
	if c.BaudRate <= 0 {
		errs = append(errs, fmt.Errorf("invalid baud rate %d", c.BaudRate))
	}
	if c.SettleDelay < 0 {
		errs = append(errs, fmt.Errorf("invalid settle delay %v", time.Duration(c.SettleDelay)))
	}
	if c.BindAddress == "" {
		errs = append(errs, errors.New("bind address is required"))
	}
	if c.MQTT.Broker != "" && c.MQTT.Topic == "" {
		errs = append(errs, errors.New("mqtt topic is required when a broker is set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
