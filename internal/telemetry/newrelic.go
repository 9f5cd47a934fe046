package telemetry

import (
	"time"

	"github.com/Estefano-cmd/impulsoApi/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
)

// InitNewRelic initializes the New Relic application.
// It returns nil when the agent is disabled or has no license key.
func InitNewRelic(cfg config.NewRelicConfig, log *logrus.Logger) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, err
	}

	if err := app.WaitForConnection(5 * time.Second); err != nil {
		log.WithError(err).Warn("New Relic agent not connected yet, continuing")
	}

	return app, nil
}
