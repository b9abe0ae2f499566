package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/saimahendra282/testdeployment/internal/domain"
)

const musicColumns = "id::text, name, pic_id, audio_id, created_at, updated_at"

func (r *PGRepo) insertMusicQuery(m domain.NewMusic) sq.InsertBuilder {
	return r.qb().Insert(r.table("music")).
		Columns("name", "pic_id", "audio_id").
		Values(m.Name, m.PicID, m.AudioID).
		Suffix("RETURNING " + musicColumns)
}

func (r *PGRepo) selectMusicQuery() sq.SelectBuilder {
	return r.qb().Select(musicColumns).
		From(r.table("music")).
		OrderBy("created_at ASC", "id ASC")
}

func (r *PGRepo) Insert(ctx context.Context, m domain.NewMusic) (domain.Music, error) {
	if err := m.Validate(); err != nil {
		return domain.Music{}, err
	}
	sqlStr, args, err := r.insertMusicQuery(m).ToSql()
	if err != nil {
		return domain.Music{}, fmt.Errorf("build insert: %w", err)
	}
	r.logSQL("Insert", sqlStr, args)

	start := time.Now()
	var out domain.Music
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&out.ID, &out.Name, &out.PicID, &out.AudioID, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		r.logger.Printf("Insert scan error after %s: %v", time.Since(start), err)
		return domain.Music{}, fmt.Errorf("insert music: %w", err)
	}
	r.logger.Printf("Insert ok in %s id=%s name=%q", time.Since(start), out.ID, out.Name)
	return out, nil
}

func (r *PGRepo) FindAll(ctx context.Context) ([]domain.Music, error) {
	sqlStr, args, err := r.selectMusicQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	r.logSQL("FindAll", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("FindAll query error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("find music: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Music, 0)
	for rows.Next() {
		var m domain.Music
		if err := rows.Scan(&m.ID, &m.Name, &m.PicID, &m.AudioID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			r.logger.Printf("FindAll scan error: %v", err)
			return nil, err
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("FindAll rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("FindAll ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}
