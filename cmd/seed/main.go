package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/arturxdev/interview-helper/internal/config"
	"github.com/arturxdev/interview-helper/internal/database"
	"github.com/arturxdev/interview-helper/internal/seed"
	"github.com/arturxdev/interview-helper/internal/services"
	"github.com/arturxdev/interview-helper/internal/store"
)

func main() {
	topicsFile := flag.String("topics", "seed/topics.yaml", "topics YAML file (empty to skip)")
	questionsDir := flag.String("questions", "seed/questions", "directory of question YAML files (empty to skip)")
	countsOnly := flag.Bool("counts-only", false, "only recompute topic question counts")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongo := database.NewMongoProvider(cfg.MongoURI, cfg.MongoDatabase)
	defer mongo.Close(context.Background())

	questionStore := store.NewQuestionStore(mongo)
	topicStore := store.NewTopicStore(mongo)
	if err := questionStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}
	if err := topicStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// Recounting invalidates the server's cached topic list when Redis is configured.
	var cache services.TopicCache
	if rdb := database.ConnectRedis(cfg); rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisTopicCache(rdb, cfg.TopicCacheTTL)
	}
	topicService := services.NewTopicService(topicStore, questionStore, cache)

	seeder := seed.NewSeeder(questionStore, topicStore, topicService)
	report, err := seeder.Run(ctx, seed.Options{
		TopicsFile:   *topicsFile,
		QuestionsDir: *questionsDir,
		CountsOnly:   *countsOnly,
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seed: %d topics upserted, %d questions created, %d already present",
		report.TopicsUpserted, report.QuestionsInserted, report.QuestionsSkipped)
	for topic, n := range report.Counts {
		log.Printf("seed: %s has %d questions", topic, n)
	}
}
