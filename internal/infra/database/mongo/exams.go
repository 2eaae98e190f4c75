package mongox

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/domain"
)

// ---- Mongo репозиторий экзаменов ----

const examsCollection = "exams"

type Config struct {
	URI      string
	Database string
}

type ExamsRepo struct {
	logger *log.Logger
	client *mongo.Client
	coll   *mongo.Collection
}

// Документ коллекции. _id генерирует драйвер при вставке.
type examDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SubjectID string             `bson:"subject_id"`
	Date      string             `bson:"date"`
	BlobRef   *string            `bson:"blob_ref"`
}

func (d examDoc) toDomain() domain.Exam {
	return domain.Exam{
		ID:        d.ID.Hex(),
		SubjectID: d.SubjectID,
		Date:      d.Date,
		BlobRef:   d.BlobRef,
	}
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*ExamsRepo, error) {
	logger.Println("connecting to mongodb...")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Println("mongodb connected")

	coll := client.Database(cfg.Database).Collection(examsCollection)
	return &ExamsRepo{logger: logger, client: client, coll: coll}, nil
}

func (r *ExamsRepo) Close(ctx context.Context) error {
	r.logger.Println("disconnecting mongodb...")
	if err := r.client.Disconnect(ctx); err != nil {
		r.logger.Printf("disconnect failed: %v", err)
		return err
	}
	r.logger.Println("mongodb disconnected")
	return nil
}

func (r *ExamsRepo) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, nil); err != nil {
		r.logger.Printf("ping failed: %v", err)
		return err
	}
	return nil
}

func (r *ExamsRepo) InsertExam(ctx context.Context, e domain.Exam) (domain.Exam, error) {
	doc := examDoc{SubjectID: e.SubjectID, Date: e.Date, BlobRef: e.BlobRef}

	start := time.Now()
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Printf("InsertExam error after %s: %v", time.Since(start), err)
		return domain.Exam{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	r.logger.Printf("InsertExam ok in %s id=%s subject=%s", time.Since(start), doc.ID.Hex(), doc.SubjectID)
	return doc.toDomain(), nil
}

func (r *ExamsRepo) ExamByID(ctx context.Context, id domain.ExamID) (domain.Exam, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// невалидный hex — такого документа заведомо нет
		return domain.Exam{}, fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
	}

	start := time.Now()
	var doc examDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Printf("ExamByID not found in %s id=%s", time.Since(start), id)
			return domain.Exam{}, fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
		}
		r.logger.Printf("ExamByID error after %s: %v", time.Since(start), err)
		return domain.Exam{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.logger.Printf("ExamByID ok in %s id=%s", time.Since(start), id)
	return doc.toDomain(), nil
}

// Offset-пагинация по естественному порядку коллекции: конкурентные
// вставки могут сдвигать страницы, порядок не гарантируется.
func (r *ExamsRepo) ListExams(ctx context.Context, f domain.ExamFilter, skip, limit int64) ([]domain.Exam, error) {
	filter := bson.M{}
	if f.SubjectID != nil {
		filter["subject_id"] = *f.SubjectID
	}
	if f.Date != nil {
		filter["date"] = *f.Date
	}
	if f.BlobRef != nil {
		filter["blob_ref"] = *f.BlobRef
	}

	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	start := time.Now()
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Printf("ListExams find error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	defer cur.Close(ctx)

	var docs []examDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.logger.Printf("ListExams cursor error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}

	res := make([]domain.Exam, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}
	r.logger.Printf("ListExams ok in %s count=%d skip=%d limit=%d", time.Since(start), len(res), skip, limit)
	return res, nil
}

func (r *ExamsRepo) ReplaceExam(ctx context.Context, id domain.ExamID, subjectID, date string, blobRef *domain.BlobID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
	}

	set := bson.M{"$set": bson.M{
		"subject_id": subjectID,
		"date":       date,
		"blob_ref":   blobRef,
	}}

	start := time.Now()
	res, err := r.coll.UpdateByID(ctx, oid, set)
	if err != nil {
		r.logger.Printf("ReplaceExam error after %s: %v", time.Since(start), err)
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		r.logger.Printf("ReplaceExam not found in %s id=%s", time.Since(start), id)
		return fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
	}
	r.logger.Printf("ReplaceExam ok in %s id=%s", time.Since(start), id)
	return nil
}

func (r *ExamsRepo) DeleteExam(ctx context.Context, id domain.ExamID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
	}

	start := time.Now()
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Printf("DeleteExam error after %s: %v", time.Since(start), err)
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	if res.DeletedCount == 0 {
		r.logger.Printf("DeleteExam not found in %s id=%s", time.Since(start), id)
		return fmt.Errorf("exam %s: %w", id, domain.ErrNotFound)
	}
	r.logger.Printf("DeleteExam ok in %s id=%s", time.Since(start), id)
	return nil
}
