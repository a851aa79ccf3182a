package main

import (
	"FileHub/config"
	"FileHub/internal/mq"
	"FileHub/internal/repo"
	"FileHub/internal/service"
	"FileHub/internal/storage"
	"FileHub/internal/worker"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Standalone thumbnail worker, used with QUEUE_BACKEND=amqp. It shares
// the metadata and blob stores with the server and pulls jobs from
// RabbitMQ.
func main() {
	config.InitConfig()
	cfg := config.AppConfig

	db := repo.OpenMysql()
	files := service.NewFiles(db)

	var blobs storage.Store
	if cfg.BlobBackend == "minio" {
		blobs = storage.NewMinio()
	} else {
		local, err := storage.NewLocal(cfg.FolderPath)
		if err != nil {
			log.Fatal("init blob storage fail", err)
		}
		blobs = local
	}

	queue, err := mq.DialRabbit()
	if err != nil {
		log.Fatal("init rabbitmq fail", err)
	}
	defer queue.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("thumbnail worker started")
	w := worker.NewThumbnailer(files, blobs, queue, cfg.ThumbWorkerConcurrency, cfg.ThumbRate, cfg.ThumbBurst)
	if err := w.Run(ctx); err != nil {
		log.Fatalf("thumbnail worker stopped: %v", err)
	}
}
