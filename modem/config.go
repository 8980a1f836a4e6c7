package modem

import (
	"fmt"
	"log/slog"
	"time"
)

// Default timings. The modem needs at least DefaultSettleDelay to formulate
// a reply; the others are layered on top for slower operations.
const (
	DefaultSettleDelay  = 500 * time.Millisecond
	DefaultCommandGap   = 500 * time.Millisecond
	DefaultDialDelay    = time.Second
	DefaultGPRSDelay    = 3 * time.Second
	DefaultConnectDelay = 2 * time.Second
)

type Config struct {
	Dialer Dialer
	Logger *slog.Logger

	// SettleDelay is the fixed wait before every response is collected.
	SettleDelay time.Duration
	// CommandGap separates the unanswered steps of an SMS submission.
	CommandGap time.Duration
	// DialDelay is added before the outcome of ATD/ATDL is collected.
	DialDelay time.Duration
	// GPRSDelay is added after AT+CIICR while the PDP context comes up.
	GPRSDelay time.Duration
	// ConnectDelay is added after AT+CIPSTART while the TCP link opens.
	ConnectDelay time.Duration

	// ProbeOnOpen makes New fail with ErrNotResponding unless the modem
	// answers the AT handshake.
	ProbeOnOpen bool
}

func (c *Config) validate() error {
	if c.Dialer == nil {
		return ErrNoDialer
	}
	delays := []struct {
		name  string
		value time.Duration
	}{
		{"settle delay", c.SettleDelay},
		{"command gap", c.CommandGap},
		{"dial delay", c.DialDelay},
		{"GPRS delay", c.GPRSDelay},
		{"connect delay", c.ConnectDelay},
	}
	for _, d := range delays {
		if d.value < 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidDelay, d.name, d.value)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.CommandGap == 0 {
		c.CommandGap = DefaultCommandGap
	}
	if c.DialDelay == 0 {
		c.DialDelay = DefaultDialDelay
	}
	if c.GPRSDelay == 0 {
		c.GPRSDelay = DefaultGPRSDelay
	}
	if c.ConnectDelay == 0 {
		c.ConnectDelay = DefaultConnectDelay
	}
}

// ConfigBuilder assembles a Config step by step.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.Dialer = d
	return b
}

func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.Logger = l
	return b
}

func (b *ConfigBuilder) WithSettleDelay(d time.Duration) *ConfigBuilder {
	b.config.SettleDelay = d
	return b
}

func (b *ConfigBuilder) WithCommandGap(d time.Duration) *ConfigBuilder {
	b.config.CommandGap = d
	return b
}

func (b *ConfigBuilder) WithDialDelay(d time.Duration) *ConfigBuilder {
	b.config.DialDelay = d
	return b
}

func (b *ConfigBuilder) WithGPRSDelay(d time.Duration) *ConfigBuilder {
	b.config.GPRSDelay = d
	return b
}

func (b *ConfigBuilder) WithConnectDelay(d time.Duration) *ConfigBuilder {
	b.config.ConnectDelay = d
	return b
}

func (b *ConfigBuilder) WithProbeOnOpen(probe bool) *ConfigBuilder {
	b.config.ProbeOnOpen = probe
	return b
}

// Build validates the configuration and fills in defaults.
func (b *ConfigBuilder) Build() (Config, error) {
	c := b.config
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.setDefaults()
	return c, nil
}
