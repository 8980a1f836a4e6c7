package modem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nthnn/SIM900/modem"
)

func TestConfig(t *testing.T) {
	t.Run("ErrNoDialer when no dialer provided", func(t *testing.T) {
		_, err := modem.NewConfigBuilder().Build()

		if err != modem.ErrNoDialer {
			t.Errorf("expected ErrNoDialer, got: %v", err)
		}
	})

	t.Run("Defaults for zero delays", func(t *testing.T) {
		config, err := modem.NewConfigBuilder().
			WithDialer(modem.NewTestChannel().Dialer()).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}

		if config.SettleDelay != modem.DefaultSettleDelay {
			t.Errorf("expected settle delay %v, got %v", modem.DefaultSettleDelay, config.SettleDelay)
		}
		if config.CommandGap != modem.DefaultCommandGap {
			t.Errorf("expected command gap %v, got %v", modem.DefaultCommandGap, config.CommandGap)
		}
		if config.DialDelay != modem.DefaultDialDelay {
			t.Errorf("expected dial delay %v, got %v", modem.DefaultDialDelay, config.DialDelay)
		}
		if config.GPRSDelay != modem.DefaultGPRSDelay {
			t.Errorf("expected GPRS delay %v, got %v", modem.DefaultGPRSDelay, config.GPRSDelay)
		}
		if config.ConnectDelay != modem.DefaultConnectDelay {
			t.Errorf("expected connect delay %v, got %v", modem.DefaultConnectDelay, config.ConnectDelay)
		}
		if config.Logger == nil {
			t.Error("expected a default logger")
		}
		if config.ProbeOnOpen {
			t.Error("expected ProbeOnOpen to default to false")
		}
	})

	t.Run("Explicit delays kept", func(t *testing.T) {
		config, err := modem.NewConfigBuilder().
			WithDialer(modem.NewTestChannel().Dialer()).
			WithSettleDelay(2 * time.Second).
			WithGPRSDelay(10 * time.Second).
			WithProbeOnOpen(true).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}
		if config.SettleDelay != 2*time.Second {
			t.Errorf("expected settle delay 2s, got %v", config.SettleDelay)
		}
		if config.GPRSDelay != 10*time.Second {
			t.Errorf("expected GPRS delay 10s, got %v", config.GPRSDelay)
		}
		if !config.ProbeOnOpen {
			t.Error("expected ProbeOnOpen to be set")
		}
	})

	t.Run("ErrInvalidDelay for negative delay", func(t *testing.T) {
		_, err := modem.NewConfigBuilder().
			WithDialer(modem.NewTestChannel().Dialer()).
			WithConnectDelay(-time.Second).
			Build()

		if !errors.Is(err, modem.ErrInvalidDelay) {
			t.Errorf("expected ErrInvalidDelay, got: %v", err)
		}
	})
}
