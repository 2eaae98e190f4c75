package domain

import "context"

// Фильтр списка экзаменов: конъюнкция по точному совпадению,
// nil-поле — без ограничения.
type ExamFilter struct {
	SubjectID *string
	Date      *string
	BlobRef   *BlobID
}

type StudentsRepo interface {
	Close()
	Ping(context.Context) error
	// ErrConflict при дубликате id
	CreateStudent(ctx context.Context, s Student) (Student, error)
	// Все строки без фильтра, порядок — естественный порядок стора
	ListStudents(ctx context.Context) ([]Student, error)
	// ErrNotFound, если строка не затронута
	UpdateStudent(ctx context.Context, id StudentID, name, email string) (Student, error)
	DeleteStudent(ctx context.Context, id StudentID) error
}

type ExamsRepo interface {
	Close(context.Context) error
	Ping(context.Context) error
	// _id генерирует документный стор
	InsertExam(ctx context.Context, e Exam) (Exam, error)
	ExamByID(ctx context.Context, id ExamID) (Exam, error)
	// Offset-пагинация: skip/limit по естественному порядку коллекции.
	// Конкурентные вставки могут сдвигать страницы — известное ограничение.
	ListExams(ctx context.Context, f ExamFilter, skip, limit int64) ([]Exam, error)
	// Полная перезапись полей документа; ErrNotFound, если документа нет
	ReplaceExam(ctx context.Context, id ExamID, subjectID, date string, blobRef *BlobID) error
	DeleteExam(ctx context.Context, id ExamID) error
}
