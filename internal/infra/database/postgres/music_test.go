package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/saimahendra282/testdeployment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertMusicQuery(t *testing.T) {
	r := &PGRepo{schema: "public"}
	sqlStr, args, err := r.insertMusicQuery(domain.NewMusic{Name: "Song A", PicID: "p1", AudioID: "a1"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO public.music (name,pic_id,audio_id) VALUES ($1,$2,$3) RETURNING "+musicColumns,
		sqlStr)
	assert.Equal(t, []any{"Song A", "p1", "a1"}, args)
}

func TestSelectMusicQueryOrdersByInsertion(t *testing.T) {
	r := &PGRepo{schema: "media"}
	sqlStr, args, err := r.selectMusicQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT "+musicColumns+" FROM media.music ORDER BY created_at ASC, id ASC", sqlStr)
	assert.Empty(t, args)
}

func TestInsertValidatesBeforeQuery(t *testing.T) {
	r := &PGRepo{schema: "public"}
	_, err := r.Insert(context.Background(), domain.NewMusic{Name: "x", PicID: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
