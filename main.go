package main

import (
	"FileHub/config"
	"FileHub/internal/handler"
	"FileHub/internal/mq"
	"FileHub/internal/repo"
	"FileHub/internal/service"
	"FileHub/internal/session"
	"FileHub/internal/storage"
	"FileHub/internal/task"
	"FileHub/internal/worker"
	"FileHub/router"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main wires the stores once and starts the HTTP server. With the
// in-process queue backend the thumbnail worker runs here too;
// otherwise jobs go to RabbitMQ for the standalone worker binary.
func main() {
	config.InitConfig()
	cfg := config.AppConfig

	db := repo.OpenMysql()
	rdb := repo.OpenRedis()
	blobs := openBlobStore()
	queue := openQueue()

	sessions := session.NewStore(rdb)
	users := service.NewUsers(db)
	files := service.NewFiles(db)
	thumbnails := task.NewThumbnails(queue)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.QueueBackend != "amqp" {
		w := worker.NewThumbnailer(files, blobs, queue, cfg.ThumbWorkerConcurrency, cfg.ThumbRate, cfg.ThumbBurst)
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Printf("thumbnail worker stopped: %v", err)
			}
		}()
	}

	h := &handler.Handler{
		Sessions:   sessions,
		Users:      users,
		Files:      files,
		Blobs:      blobs,
		Thumbnails: thumbnails,
		SessionTTL: cfg.SessionTTL,
	}
	r := router.InitRouter(h)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Println("server running on port", cfg.Port)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = queue.Close()
	_ = rdb.Close()
}

func openBlobStore() storage.Store {
	if config.AppConfig.BlobBackend == "minio" {
		return storage.NewMinio()
	}
	local, err := storage.NewLocal(config.AppConfig.FolderPath)
	if err != nil {
		log.Fatal("init blob storage fail", err)
	}
	return local
}

func openQueue() mq.Queue {
	if config.AppConfig.QueueBackend == "amqp" {
		queue, err := mq.DialRabbit()
		if err != nil {
			log.Fatal("init rabbitmq fail", err)
		}
		return queue
	}
	return mq.NewMemory(256)
}
