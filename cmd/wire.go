package cmd

import (
	"fmt"

	"github.com/dradle/my-bike-rent/internal/config"
	"github.com/dradle/my-bike-rent/internal/gviz"
	"github.com/dradle/my-bike-rent/internal/kafka"
	"github.com/dradle/my-bike-rent/internal/logger"
	"github.com/dradle/my-bike-rent/internal/service/lookup"
)

// buildLookup wires the sheet client and, when brokers are configured, the
// event producer. The returned cleanup must always be called.
func buildLookup(cfg config.Config) (*lookup.Service, func(), error) {
	client, err := gviz.NewClient(gviz.Options{
		BaseURL:          cfg.Sheet.BaseURL,
		SpreadsheetID:    cfg.Sheet.SpreadsheetID,
		Timeout:          cfg.Sheet.Timeout,
		UserAgent:        cfg.Sheet.UserAgent,
		BreakerThreshold: cfg.Sheet.Breaker.FailThreshold,
		BreakerOpenFor:   cfg.Sheet.Breaker.OpenFor,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("sheet client: %w", err)
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return lookup.New(client, nil, logger.Log), func() {}, nil
	}

	producer := kafka.NewProducerFromConfig(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		Log:     logger.Log,
	})
	cleanup := func() { _ = producer.Close() }

	return lookup.New(client, producer, logger.Log), cleanup, nil
}
