package domain

import (
	"context"
	"io"
)

// Хранилище бинарного контента (S3/MinIO).
// Стор сам не следит за ссылочной целостностью — за связь
// ExamRecord<->Blob отвечает каталог экзаменов.
type BlobStorage interface {
	// Вычитывает поток до конца и возвращает свежий id.
	// Не возвращается, пока все байты не записаны; при ошибке
	// ни один блоб не виден ни под каким id.
	Upload(ctx context.Context, filename, mime string, r io.Reader) (BlobInfo, error)
	// Ленивый одноразовый поток; ErrNotFound, если блоба нет
	Download(ctx context.Context, id BlobID) (io.ReadCloser, BlobInfo, error)
	// ErrNotFound, если блоба нет; после успеха Download/Delete по id дают ErrNotFound
	Delete(ctx context.Context, id BlobID) error
	Ping(ctx context.Context) error
}
