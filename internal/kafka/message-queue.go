package kafka

import (
	"github.com/Shopify/sarama"
)

// MessageQueue of kafka, producer side only.
type MessageQueue struct {
	producer sarama.SyncProducer
}

// NewMessageQueue ...
func NewMessageQueue(
	addrs []string,
) (mq *MessageQueue, err error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(addrs, cfg)
	if err != nil {
		return
	}
	mq = NewMessageQueueFromProducer(producer)
	return
}

// NewMessageQueueFromProducer wraps ready producer.
func NewMessageQueueFromProducer(producer sarama.SyncProducer) *MessageQueue {
	return &MessageQueue{
		producer: producer,
	}
}

// NewPublish returns publish func.
func (mq *MessageQueue) NewPublish(topic string) Publish {
	return func(message []byte) (err error) {
		msg := &sarama.ProducerMessage{
			Topic: topic,
			Value: sarama.ByteEncoder(message),
		}
		_, _, err = mq.producer.SendMessage(msg)
		return
	}
}

// Shutdown producer.
func (mq *MessageQueue) Shutdown() error {
	return mq.producer.Close()
}
