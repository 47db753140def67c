package main

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/pattaranan1/Twitter-Cloning/models"
)

// Producer publishes post-created events for the async fanout path. The
// FanoutWriter on the other end turns them into timeline pushes.
type Producer struct {
	p     *kafka.Producer
	topic string
}

func NewProducer(config models.KafkaConfig) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": config.BootStrapServers,
	})
	if err != nil {
		log.Println("Error in intiallizing a kakfa producer: ", err.Error())
		return nil, err
	}
	pr := &Producer{
		p:     p,
		topic: config.Topic,
	}
	// delivery reports must be drained or the internal queue fills up and
	// Produce starts failing. Failed deliveries are fanout noise , logged
	// like the rest of it. The channel closes on Close.
	go func() {
		for e := range p.Events() {
			pr.handleEvent(e)
		}
	}()
	return pr, nil
}

func (pr *Producer) handleEvent(e kafka.Event) {
	switch ev := e.(type) {
	case *kafka.Message:
		if ev.TopicPartition.Error != nil {
			log.Printf("Failed delivery of post event{%s}: %v\n", string(ev.Key), ev.TopicPartition.Error)
		}
	case kafka.Error:
		log.Println("Error in Producing events: ", ev)
	}
}

func (pr *Producer) ProduceFeedItem(item models.FeedItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return pr.p.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &pr.topic,
			Partition: kafka.PartitionAny,
		},
		// keyed by author so one user's posts stay ordered
		Key:   []byte(strconv.FormatInt(item.UserId, 10)),
		Value: payload,
	}, nil)
}

func (pr *Producer) Close() {
	pr.p.Flush(5000)
	pr.p.Close()
}
