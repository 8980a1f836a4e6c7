package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// startMQTT connects to the configured broker and submits every valid
// SMSRequest published on the topic. It returns a nil client when no broker
// is configured.
func startMQTT(cfg MQTTConfig, gw *Gateway, logger *slog.Logger) (mqtt.Client, error) {
	if cfg.Broker == "" {
		return nil, nil
	}

	handler := smsHandler(gw, logger)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetOrderMatters(false)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		logger.Info("MQTT connected", "broker", cfg.Broker, "topic", cfg.Topic)
		if token := c.Subscribe(cfg.Topic, 0, handler); token.Wait() && token.Error() != nil {
			logger.Error("MQTT subscribe failed", "topic", cfg.Topic, "error", token.Error())
		}
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", cfg.Broker, token.Error())
	}
	return client, nil
}

func smsHandler(gw *Gateway, logger *slog.Logger) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		var req SMSRequest
		if err := json.Unmarshal(msg.Payload(), &req); err != nil {
			logger.Warn("MQTT bad payload", "topic", msg.Topic(), "error", err)
			return
		}
		if req.To == "" || req.Message == "" {
			logger.Warn("MQTT message missing to/message", "topic", msg.Topic())
			return
		}

		if !gw.SendSMS(req.To, req.Message) {
			logger.Error("Failed to send SMS", "to", req.To, "source", "mqtt")
			return
		}
		logger.Info("SMS sent successfully", "to", req.To, "message_length", len(req.Message), "source", "mqtt")
	}
}
