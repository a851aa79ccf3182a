package task

import (
	"FileHub/internal/mq"
	"context"
	"encoding/json"
)

// ThumbnailJob is the payload sent to the thumbnail worker. It is an
// ephemeral message: nothing persists beyond the queue.
type ThumbnailJob struct {
	UserID uint64 `json:"user_id"`
	FileID uint64 `json:"file_id"`
}

// Thumbnails publishes thumbnail jobs after image uploads.
type Thumbnails struct {
	queue mq.Queue
}

// NewThumbnails creates the job publisher.
func NewThumbnails(queue mq.Queue) *Thumbnails {
	return &Thumbnails{queue: queue}
}

// Enqueue publishes a job for an uploaded image. It never blocks the
// upload response on image processing.
func (t *Thumbnails) Enqueue(ctx context.Context, userID, fileID uint64) error {
	body, err := json.Marshal(ThumbnailJob{UserID: userID, FileID: fileID})
	if err != nil {
		return err
	}
	return t.queue.Publish(ctx, body)
}
