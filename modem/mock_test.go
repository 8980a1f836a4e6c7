package modem_test

import (
	"context"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/nthnn/SIM900/modem"
)

// MockSequenceBuilder collects the channel calls one catalog operation
// makes, for use with gomock.InOrder.
type MockSequenceBuilder struct {
	channel *modem.MockChannel
	calls   []any
}

func NewMockSequence(channel *modem.MockChannel) *MockSequenceBuilder {
	return &MockSequenceBuilder{
		channel: channel,
		calls:   []any{},
	}
}

// Command expects cmd to be written and reply to be waiting afterwards.
func (b *MockSequenceBuilder) Command(cmd, reply string) *MockSequenceBuilder {
	wire := cmd + "\r\n"
	b.calls = append(b.calls,
		b.channel.EXPECT().Write([]byte(wire)).Return(len(wire), nil),
		b.channel.EXPECT().Available().Return(len(reply)),
	)
	if reply != "" {
		b.calls = append(b.calls, b.channel.EXPECT().ReadAvailable().Return([]byte(reply)))
	}
	return b
}

func (b *MockSequenceBuilder) AT() *MockSequenceBuilder {
	return b.Command("AT", "AT\r\nOK\r\n")
}

func (b *MockSequenceBuilder) Build() []any {
	return b.calls
}

// fastConfig returns a configuration whose delays are all one millisecond.
func fastConfig(t *testing.T, d modem.Dialer) modem.Config {
	t.Helper()
	config, err := modem.NewConfigBuilder().
		WithDialer(d).
		WithSettleDelay(time.Millisecond).
		WithCommandGap(time.Millisecond).
		WithDialDelay(time.Millisecond).
		WithGPRSDelay(time.Millisecond).
		WithConnectDelay(time.Millisecond).
		Build()
	if err != nil {
		t.Fatalf("unexpected error from Build(): %v", err)
	}
	return config
}

// newTestModem opens a modem on a scripted TestChannel.
func newTestModem(t *testing.T, ch *modem.TestChannel) *modem.Modem {
	t.Helper()
	m, err := modem.New(context.Background(), fastConfig(t, ch.Dialer()))
	if err != nil {
		t.Fatalf("failed to create modem: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

// newMockModem opens a modem on a gomock channel. Only the Dial call is
// expected; the caller sets up everything else.
func newMockModem(t *testing.T, ctrl *gomock.Controller) (*modem.Modem, *modem.MockChannel) {
	t.Helper()
	channel := modem.NewMockChannel(ctrl)
	dialer := modem.NewMockDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any()).Return(channel, nil)

	m, err := modem.New(context.Background(), fastConfig(t, dialer))
	if err != nil {
		t.Fatalf("failed to create modem: %v", err)
	}
	return m, channel
}
