package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Estefano-cmd/impulsoApi/config"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ServiceBusClient is an interface for Azure Service Bus operations
type ServiceBusClient interface {
	SendMessage(ctx context.Context, body interface{}, sessionID string) error
	Close() error
}

// serviceBusClient implements the ServiceBusClient interface
type serviceBusClient struct {
	client    *azservicebus.Client
	sender    *azservicebus.Sender
	queueName string
	source    string
}

// mockServiceBusClient is used for local development when no connection string is set
type mockServiceBusClient struct {
	source string
	log    *logrus.Logger
}

// NewServiceBusClient creates a new Azure Service Bus client
func NewServiceBusClient(cfg config.ServiceBusConfig, source string, log *logrus.Logger) (ServiceBusClient, error) {
	if cfg.ConnectionString == "" {
		return &mockServiceBusClient{source: source, log: log}, nil
	}

	client, err := azservicebus.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Service Bus client: %w", err)
	}

	sender, err := client.NewSender(cfg.QueueName, nil)
	if err != nil {
		client.Close(context.Background())
		return nil, fmt.Errorf("failed to create Service Bus sender: %w", err)
	}

	return &serviceBusClient{
		client:    client,
		sender:    sender,
		queueName: cfg.QueueName,
		source:    source,
	}, nil
}

// SendMessage sends a JSON message to the Service Bus queue
func (s *serviceBusClient) SendMessage(ctx context.Context, body interface{}, sessionID string) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message body: %w", err)
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	msg := &azservicebus.Message{
		Body:        data,
		ContentType: stringPtr("application/json"),
		ApplicationProperties: map[string]interface{}{
			"source": s.source,
			"time":   time.Now().UTC().Format(time.RFC3339),
		},
		SessionID: &sessionID,
	}

	return s.sender.SendMessage(ctx, msg, nil)
}

// Close closes the sender and the client
func (s *serviceBusClient) Close() error {
	if s.sender != nil {
		if err := s.sender.Close(context.Background()); err != nil {
			return err
		}
	}
	if s.client != nil {
		return s.client.Close(context.Background())
	}
	return nil
}

// SendMessage logs the message instead of sending it
func (m *mockServiceBusClient) SendMessage(ctx context.Context, body interface{}, sessionID string) error {
	m.log.WithFields(logrus.Fields{
		"source":     m.source,
		"session_id": sessionID,
		"body":       body,
	}).Debug("[MOCK ServiceBus] Message sent")
	return nil
}

// Close implementation for mock client
func (m *mockServiceBusClient) Close() error {
	return nil
}

func stringPtr(s string) *string {
	return &s
}
