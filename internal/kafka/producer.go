package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/fraudshield/backend-go/internal/logger"
	"go.uber.org/zap"
)

// Producer publishes audit events for chat exchanges and scam reports.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// AuditEvent is the wire format of one audit record.
type AuditEvent struct {
	Kind           string    `json:"kind"` // chat_message, scam_report
	ConversationID uint      `json:"conversation_id,omitempty"`
	ReportID       uint      `json:"report_id,omitempty"`
	Role           string    `json:"role,omitempty"`
	Content        string    `json:"content,omitempty"`
	ScamType       string    `json:"scam_type,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

var globalProducer *Producer

// InitProducer connects the global sync producer. Callers should treat
// a nil global producer as "auditing disabled".
func InitProducer(brokers []string, topic string) error {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Timeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}

	globalProducer = &Producer{
		producer: producer,
		topic:    topic,
	}

	logger.Info("Kafka producer initialized", zap.Strings("brokers", brokers), zap.String("topic", topic))
	return nil
}

// SendChatMessage publishes one persisted chat message. No-op when the
// producer is not initialized.
func SendChatMessage(conversationID uint, role, content string) error {
	return send(AuditEvent{
		Kind:           "chat_message",
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Timestamp:      time.Now(),
	}, fmt.Sprintf("conversation-%d", conversationID))
}

// SendScamReport publishes one accepted scam report.
func SendScamReport(reportID uint, scamType, description string) error {
	return send(AuditEvent{
		Kind:      "scam_report",
		ReportID:  reportID,
		ScamType:  scamType,
		Content:   description,
		Timestamp: time.Now(),
	}, fmt.Sprintf("report-%d", reportID))
}

func send(event AuditEvent, key string) error {
	if globalProducer == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: globalProducer.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := globalProducer.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send audit event: %w", err)
	}
	return nil
}

// Close shuts down the global producer.
func Close() error {
	if globalProducer == nil {
		return nil
	}
	err := globalProducer.producer.Close()
	globalProducer = nil
	return err
}
