package mongox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRefValueRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	v := refValue(oid.Hex())
	assert.IsType(t, primitive.ObjectID{}, v)
	assert.Equal(t, oid.Hex(), refString(v))

	key := "0b6c1e9e-5d0e-4b5a-9a55-0f3c9b1d2e7a"
	v = refValue(key)
	assert.Equal(t, key, v)
	assert.Equal(t, key, refString(v))

	assert.Equal(t, "", refString(nil))
}

func TestMusicDocBSON(t *testing.T) {
	pic, audio := primitive.NewObjectID(), primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)
	in := musicDoc{
		ID:        primitive.NewObjectID(),
		Name:      "Song A",
		PicID:     pic,
		AudioID:   audio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out musicDoc
	require.NoError(t, bson.Unmarshal(raw, &out))

	m := out.toDomain()
	assert.Equal(t, in.ID.Hex(), m.ID)
	assert.Equal(t, "Song A", m.Name)
	assert.Equal(t, pic.Hex(), m.PicID)
	assert.Equal(t, audio.Hex(), m.AudioID)
	assert.True(t, now.Equal(m.CreatedAt))
}

func TestInsertRejectsMissingFields(t *testing.T) {
	r := &Repo{}
	_, err := r.Insert(context.Background(), domain.NewMusic{PicID: "p", AudioID: "a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
