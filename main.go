package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/pattaranan1/Twitter-Cloning/db"
	"github.com/pattaranan1/Twitter-Cloning/feed"
	"github.com/pattaranan1/Twitter-Cloning/followRepo"
	"github.com/pattaranan1/Twitter-Cloning/postRepo"
	"github.com/pattaranan1/Twitter-Cloning/store"
	"github.com/pattaranan1/Twitter-Cloning/timeline"
	"github.com/pattaranan1/Twitter-Cloning/userRepo"
)

func main() {
	InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed To Load The Configuration:", err.Error())
	}

	var service *AppService
	var fw *FanoutWriter

	switch config.Storage.Backend {
	case "postgres":
		// pull model , timelines are joined at read time and there is
		// no fanout pipeline to run
		DB := db.InitDB(config.DB)
		defer DB.Close()
		service = NewAppService(
			userRepo.NewPostgresRepo(DB),
			followRepo.NewPostgresRepo(DB),
			postRepo.NewPostgresRepo(DB),
			feed.NewPullFeed(DB),
			nil,
			config,
		)
	default:
		kv, err := store.NewRedisStore(ctx, config.Redis)
		if err != nil {
			log.Fatal("Failed to Connect with Redis: ", err.Error())
		}
		defer kv.Close()

		users := userRepo.NewRedisRepo(kv)
		follows := followRepo.NewRedisRepo(kv)
		posts := postRepo.NewRedisRepo(kv)
		pushFeed := feed.NewPushFeed(timeline.New(kv), posts, follows, users, config.Server.FanoutWorkers)

		var producer *Producer
		if config.Server.AsyncFanout {
			producer, err = NewProducer(config.Kafka)
			if err != nil {
				log.Fatal("Failed to intiallize Kafka producer: ", err.Error())
			}
			defer producer.Close()

			fw, err = NewFanoutWriter(ctx, config.Kafka, pushFeed)
			if err != nil {
				log.Fatal("Failed to intiallize FanoutWriter: ", err.Error())
			}
			go fw.WriteFanout()
		}
		service = NewAppService(users, follows, posts, pushFeed, producer, config)
	}

	go func() {
		log.Println(service.StartHealthServer())
	}()

	<-ctx.Done()

	if fw != nil {
		fw.close()
	}
}
