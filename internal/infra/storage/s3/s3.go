package s3

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// Блоб-стор поверх S3/MinIO. Ключ объекта — случайный uuid v4,
// сгенерированный здесь: координация не нужна, глобальная уникальность есть.
// Имя файла и MIME едут в метаданных объекта.
type Storage struct {
	logger *log.Logger
	cl     *minio.Client
	bucket string
}

const metaFilename = "filename"

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{logger: logger, cl: cl, bucket: cfg.Bucket}, nil
}

// Upload вычитывает поток до конца и возвращает свежий id.
// PutObject не возвращается, пока объект не записан целиком; при ошибке
// объект под этим ключом не виден, остатки чистим best-effort.
func (s *Storage) Upload(ctx context.Context, filename, mime string, r io.Reader) (domain.BlobInfo, error) {
	if mime == "" {
		mime = "application/octet-stream"
	}
	key := uuid.NewString()

	start := time.Now()
	info, err := s.cl.PutObject(ctx, s.bucket, key, r, -1, minio.PutObjectOptions{
		ContentType:  mime,
		UserMetadata: map[string]string{metaFilename: filename},
	})
	if err != nil {
		s.logger.Printf("Upload failed after %s key=%s: %v", time.Since(start), key, err)
		_ = s.cl.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
		return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	s.logger.Printf("Upload ok in %s key=%s size=%d", time.Since(start), key, info.Size)
	return domain.BlobInfo{ID: key, Filename: filename, MIME: mime, Size: info.Size}, nil
}

// Download открывает ленивый поток для отдачи клиенту.
// Сначала HEAD: GetObject у minio отложенный, а NotFound нужен
// уже на момент вызова.
func (s *Storage) Download(ctx context.Context, id domain.BlobID) (io.ReadCloser, domain.BlobInfo, error) {
	start := time.Now()
	stat, err := s.cl.StatObject(ctx, s.bucket, id, minio.StatObjectOptions{})
	if err != nil {
		return nil, domain.BlobInfo{}, s.mapErr("Download.stat", id, start, err)
	}

	obj, err := s.cl.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, domain.BlobInfo{}, s.mapErr("Download.get", id, start, err)
	}

	bi := domain.BlobInfo{
		ID:       id,
		Filename: statFilename(stat),
		MIME:     stat.ContentType,
		Size:     stat.Size,
	}
	s.logger.Printf("Download ok in %s key=%s size=%d", time.Since(start), id, bi.Size)
	return obj, bi, nil
}

// Delete убирает объект; повторный Download/Delete по id дадут ErrNotFound.
// RemoveObject у S3 молча идемпотентен, поэтому отсутствие проверяем HEAD-ом.
func (s *Storage) Delete(ctx context.Context, id domain.BlobID) error {
	start := time.Now()
	if _, err := s.cl.StatObject(ctx, s.bucket, id, minio.StatObjectOptions{}); err != nil {
		return s.mapErr("Delete.stat", id, start, err)
	}
	if err := s.cl.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return s.mapErr("Delete.remove", id, start, err)
	}
	s.logger.Printf("Delete ok in %s key=%s", time.Since(start), id)
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Printf("ping failed: %v", err)
		return err
	}
	if !ok {
		s.logger.Printf("ping failed: bucket %q does not exist", s.bucket)
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func (s *Storage) mapErr(op string, id domain.BlobID, start time.Time, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
		s.logger.Printf("%s not found in %s key=%s", op, time.Since(start), id)
		return fmt.Errorf("blob %s: %w", id, domain.ErrNotFound)
	}
	s.logger.Printf("%s failed after %s key=%s: %v", op, time.Since(start), id, err)
	return fmt.Errorf("%w: %v", domain.ErrStore, err)
}

// minio канонизирует ключи user-metadata в заголовочный вид
func statFilename(stat minio.ObjectInfo) string {
	if v, ok := stat.UserMetadata["Filename"]; ok {
		return v
	}
	return stat.UserMetadata[metaFilename]
}
