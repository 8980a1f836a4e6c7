// Command sim900d exposes a SIM900 modem over HTTP and, optionally, MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.bug.st/serial"

	"github.com/nthnn/SIM900/modem"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	listPorts := flag.Bool("list-ports", false, "List available serial ports and exit")
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port to connect to the modem")
	flag.Int("baud-rate", modem.DefaultBaudRate, "Baud rate for serial communication")
	flag.String("bind-address", "0.0.0.0:8080", "Bind address for the HTTP server")
	flag.Duration("settle-delay", modem.DefaultSettleDelay, "Time the modem is given to answer each command")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("log-file", "", "Also write logs to this file, rotated")
	flag.String("apn", "", "Access point name; enables GPRS at startup")
	flag.String("mqtt-broker", "", "MQTT broker URL (e.g. tcp://localhost:1883); empty disables MQTT")
	flag.String("mqtt-topic", "sms/send", "MQTT topic carrying SMS requests")
	flag.Parse()

	if *listPorts {
		if err := printPorts(); err != nil {
			slog.Error("Failed to list serial ports", "error", err)
			os.Exit(1)
		}
		return
	}

	config, err := LoadConfig(WithDefaults(), WithFile(*configPath), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(config.Log)
	defer closeLog()

	modemConfig, err := modem.NewConfigBuilder().
		WithSettleDelay(time.Duration(config.SettleDelay)).
		WithLogger(logger.With("component", "modem")).
		WithProbeOnOpen(true).
		WithDialer(modem.SerialDialer{
			PortName: config.SerialPort,
			BaudRate: config.BaudRate,
		}).
		Build()
	if err != nil {
		logger.Error("Failed to create modem config", "error", err)
		os.Exit(1)
	}

	m, err := modem.New(context.Background(), modemConfig)
	if err != nil {
		logger.Error("Failed to create modem", "error", err, "port", config.SerialPort)
		os.Exit(1)
	}

	logger.Info("Starting SIM900 gateway", "port", config.SerialPort, "baud_rate", config.BaudRate)

	if config.APN.Name != "" {
		apn := modem.APN{Name: config.APN.Name, Username: config.APN.Username, Password: config.APN.Password}
		if !m.ConnectAPN(apn) || !m.EnableGPRS() {
			logger.Warn("GPRS bring-up failed", "apn", apn.Name)
		} else {
			logger.Info("GPRS enabled", "apn", apn.Name, "ip", m.IPAddress())
		}
	}

	gw := NewGateway(m)

	mqttClient, err := startMQTT(config.MQTT, gw, logger.With("component", "mqtt"))
	if err != nil {
		logger.Error("Failed to start MQTT intake", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr: config.BindAddress,
		Handler: &Server{
			Logger:  logger.With("component", "server"),
			Gateway: gw,
		},
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	if mqttClient != nil {
		logger.Info("Disconnecting from MQTT broker")
		mqttClient.Disconnect(500)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Closing HTTP server")
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to gracefully shutdown server", "error", err)
	}

	logger.Info("Closing modem connection")
	gw.Do(func(m *modem.Modem) {
		if err := m.Close(); err != nil {
			logger.Error("Failed to close modem", "error", err)
		}
	})
}

func printPorts() error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}
