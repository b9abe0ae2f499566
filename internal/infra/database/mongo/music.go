package mongox

import (
	"context"
	"fmt"
	"time"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Документ коллекции musics. Ссылки на GridFS хранятся как ObjectID,
// ключи других хранилищ — строкой.
type musicDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	PicID     any                `bson:"picId"`
	AudioID   any                `bson:"audioId"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d musicDoc) toDomain() domain.Music {
	return domain.Music{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		PicID:     refString(d.PicID),
		AudioID:   refString(d.AudioID),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func refValue(id domain.BlobID) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func refString(v any) domain.BlobID {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func (r *Repo) Insert(ctx context.Context, m domain.NewMusic) (domain.Music, error) {
	if err := m.Validate(); err != nil {
		return domain.Music{}, err
	}
	// mongo хранит время с точностью до миллисекунд
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := musicDoc{
		ID:        primitive.NewObjectID(),
		Name:      m.Name,
		PicID:     refValue(m.PicID),
		AudioID:   refValue(m.AudioID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	start := time.Now()
	if _, err := r.music.InsertOne(ctx, doc); err != nil {
		r.logger.Printf("Insert error after %s: %v", time.Since(start), err)
		return domain.Music{}, fmt.Errorf("insert music: %w", err)
	}
	r.logger.Printf("Insert ok in %s id=%s name=%q", time.Since(start), doc.ID.Hex(), doc.Name)
	return doc.toDomain(), nil
}

func (r *Repo) FindAll(ctx context.Context) ([]domain.Music, error) {
	start := time.Now()
	// ObjectID монотонен по времени создания -> порядок вставки
	cur, err := r.music.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		r.logger.Printf("FindAll query error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("find music: %w", err)
	}
	var docs []musicDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.logger.Printf("FindAll decode error: %v", err)
		return nil, fmt.Errorf("decode music: %w", err)
	}

	out := make([]domain.Music, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	r.logger.Printf("FindAll ok in %s count=%d", time.Since(start), len(out))
	return out, nil
}
