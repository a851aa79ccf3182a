package storage

import (
	"FileHub/config"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio implements Store against an object-storage bucket. A blob path
// is the object name.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio connects to MinIO and ensures the bucket exists.
func NewMinio() *Minio {
	client, err := minio.New(fmt.Sprintf("%s:%s", config.AppConfig.MinioHost, config.AppConfig.MinioPort), &minio.Options{
		Creds:  credentials.NewStaticV4(config.AppConfig.MinioUsername, config.AppConfig.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalln("minio error:", err)
	}
	ctx := context.Background()
	bucket := config.AppConfig.BucketName
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalln("check bucket fail:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalln("create bucket fail:", err)
		}
	}
	return &Minio{client: client, bucket: bucket}
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// Write uploads bytes under a freshly allocated object name.
func (m *Minio) Write(ctx context.Context, r io.Reader) (string, error) {
	object := uuid.NewString()
	if err := m.Put(ctx, object, r); err != nil {
		return "", err
	}
	return object, nil
}

// Put uploads bytes at the given object name.
func (m *Minio) Put(ctx context.Context, path string, r io.Reader) error {
	_, err := m.client.PutObject(ctx, m.bucket, path, r, -1, minio.PutObjectOptions{})
	return err
}

// Open fetches an object. Stat forces the not-found check up front
// instead of on first read.
func (m *Minio) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return obj, nil
}

// Exists reports whether an object lives at path.
func (m *Minio) Exists(ctx context.Context, path string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
