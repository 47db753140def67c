package main

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/pattaranan1/Twitter-Cloning/feed"
	"github.com/pattaranan1/Twitter-Cloning/models"
)

// The consumer is the responsable about fanout on write , it reads
// post-created events from the topic and pushes them into the timelines.
type FanoutWriter struct {
	c    *kafka.Consumer
	ctx  context.Context
	feed feed.Feed
	wg   *sync.WaitGroup
}

func NewFanoutWriter(ctx context.Context, config models.KafkaConfig, f feed.Feed) (*FanoutWriter, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": config.BootStrapServers,
		"group.id":          config.GroupID,

		// for better batching
		"fetch.min.bytes":   config.FetchMinBytes,
		"auto.offset.reset": config.OffsetReset,

		// at-least-once , commit manually after the fanout landed
		"auto.commit.enable": "false",
	})
	if err != nil {
		log.Println("Error in intiallizing a kakfa consumer: ", err.Error())
		return nil, err
	}
	err = c.SubscribeTopics(strings.Split(config.Topic, ","), nil)
	if err != nil {
		log.Println("Error in subcribtion to topic: ", err.Error())
		return nil, err
	}

	return &FanoutWriter{
		c:    c,
		ctx:  ctx,
		feed: f,
		wg:   &sync.WaitGroup{},
	}, nil
}

func (fw *FanoutWriter) WriteFanout() {
	for {
		select {
		case <-fw.ctx.Done():
			return
		default:
			ev := fw.c.Poll(100)
			switch e := ev.(type) {
			case *kafka.Message:
				fw.wg.Add(1)
				go func() {
					defer fw.wg.Done()
					err := fw.ProcessMessage(e)
					if err != nil {
						log.Println("Error Processing Message", err.Error())
					} else {
						fw.c.Commit()
					}
				}()
			case kafka.Error:
				log.Println("Error in Consuming events: ", e)
			}
		}
	}
}

func (fw *FanoutWriter) ProcessMessage(msg *kafka.Message) error {
	var item models.FeedItem
	err := json.Unmarshal(msg.Value, &item)
	if err != nil {
		return err
	}
	return fw.feed.FanoutPost(fw.ctx, item)
}

func (fw *FanoutWriter) close() error {
	// wait until all goroutines end
	fw.wg.Wait()
	return fw.c.Close()
}
