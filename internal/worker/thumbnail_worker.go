package worker

import (
	"FileHub/internal/mq"
	"FileHub/internal/service"
	"FileHub/internal/storage"
	"FileHub/internal/task"
	"FileHub/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"log"

	"github.com/disintegration/imaging"
	"golang.org/x/time/rate"
)

// Widths of the generated variants, largest first.
var thumbnailWidths = []int{500, 250, 100}

// Thumbnailer consumes thumbnail jobs and writes resized variants next
// to the original blob. Output paths are deterministic, so redelivered
// jobs regenerate the same bytes and double-processing is safe.
type Thumbnailer struct {
	files   *service.Files
	blobs   storage.Store
	queue   mq.Queue
	sem     chan struct{}
	limiter *rate.Limiter
}

// NewThumbnailer builds a worker over the given stores and queue.
func NewThumbnailer(files *service.Files, blobs storage.Store, queue mq.Queue, concurrency int, rateLimit float64, burst int) *Thumbnailer {
	if concurrency <= 0 {
		concurrency = 1
	}
	if burst <= 0 {
		burst = 1
	}
	var limiter *rate.Limiter
	if rateLimit <= 0 {
		limiter = rate.NewLimiter(rate.Inf, burst)
	} else {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}
	return &Thumbnailer{
		files:   files,
		blobs:   blobs,
		queue:   queue,
		sem:     make(chan struct{}, concurrency),
		limiter: limiter,
	}
}

// Run consumes jobs until ctx ends. Jobs may be handled in parallel and
// complete in any order.
func (w *Thumbnailer) Run(ctx context.Context) error {
	deliveries, err := w.queue.Consume(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("thumbnail worker: delivery channel closed")
			}
			w.sem <- struct{}{}
			go func(d mq.Delivery) {
				defer func() { <-w.sem }()
				w.handle(ctx, d)
			}(delivery)
		}
	}
}

func (w *Thumbnailer) handle(ctx context.Context, delivery mq.Delivery) {
	var job task.ThumbnailJob
	if err := json.Unmarshal(delivery.Body(), &job); err != nil {
		log.Printf("thumbnail worker: invalid message: %v", err)
		_ = delivery.Ack()
		return
	}

	if err := w.limiter.Wait(ctx); err != nil {
		_ = delivery.Nack(true)
		return
	}

	if err := w.Process(ctx, job); err != nil {
		log.Printf("thumbnail worker: job user=%d file=%d failed: %v", job.UserID, job.FileID, err)
		_ = delivery.Nack(true)
		return
	}
	_ = delivery.Ack()
}

// Process generates the variants for one job. A missing node or blob is
// acknowledged silently: the upload may have raced with a delete, and a
// retry storm helps nobody. Only infrastructure failures return an
// error and trigger redelivery.
func (w *Thumbnailer) Process(ctx context.Context, job task.ThumbnailJob) error {
	node, err := w.files.GetOwned(ctx, job.FileID, job.UserID)
	if errors.Is(err, service.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if node.Type != model.TypeImage {
		return nil
	}

	rc, err := w.blobs.Open(ctx, node.LocalPath)
	if errors.Is(err, storage.ErrNotExist) {
		log.Printf("thumbnail worker: blob missing for file %d", node.ID)
		return nil
	}
	if err != nil {
		return err
	}
	src, format, err := image.Decode(rc)
	_ = rc.Close()
	if err != nil {
		log.Printf("thumbnail worker: decode file %d failed: %v", node.ID, err)
		return nil
	}

	for _, width := range thumbnailWidths {
		if err := w.writeVariant(ctx, node, src, format, width); err != nil {
			// One failed variant must not block the others.
			log.Printf("thumbnail worker: variant %d for file %d failed: %v", width, node.ID, err)
		}
	}
	return nil
}

// writeVariant resizes preserving aspect ratio and stores the result at
// the deterministic sibling path.
func (w *Thumbnailer) writeVariant(ctx context.Context, node *model.FileNode, src image.Image, format string, width int) error {
	resized := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, encodeFormat(format)); err != nil {
		return err
	}
	return w.blobs.Put(ctx, storage.VariantPath(node.LocalPath, width), &buf)
}

func encodeFormat(decoded string) imaging.Format {
	switch decoded {
	case "jpeg":
		return imaging.JPEG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}
