package domain

import "io"

// Идентификаторы хранилищ: студенты — ключ задаёт вызывающий,
// экзамены и блобы — непрозрачные id, сгенерированные стором.
type StudentID = string
type ExamID = string
type BlobID = string

// Студент (реляционное хранилище)
type Student struct {
	ID    StudentID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Метаданные экзамена (документное хранилище).
// BlobRef — слабая ссылка на файл в блоб-сторе; nil, если файла нет.
type Exam struct {
	ID        ExamID  `json:"id"`
	SubjectID string  `json:"subject_id"`
	Date      string  `json:"date"`
	BlobRef   *BlobID `json:"blob_ref"`
}

// Метаданные блоба (без тела)
type BlobInfo struct {
	ID       BlobID `json:"id"`
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Size     int64  `json:"size"`
}

// Именованный конечный поток байт (файл из multipart-формы)
type FileUpload struct {
	Name string
	MIME string
	Body io.Reader
}

// Нефатальный сбой best-effort удаления блоба: операция над записью
// завершилась успешно, но старый/связанный блоб остался жить (orphan).
type CleanupWarning struct {
	BlobID BlobID
	Err    error
}

func (w *CleanupWarning) String() string {
	if w == nil {
		return ""
	}
	return "blob " + w.BlobID + " not deleted: " + w.Err.Error()
}
