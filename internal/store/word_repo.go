package store

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// insertBatch bounds the rows per INSERT to stay under SQLite's variable limit.
const insertBatch = 500

type wordRepo struct {
	drv dialect.Driver
}

func (r *wordRepo) ReplaceWords(ctx context.Context, list []string) (int, error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	q, args := builder().Delete("words").Query()
	if err := tx.Exec(ctx, q, args, nil); err != nil {
		return 0, fmt.Errorf("clear words: %w", err)
	}

	var batch []string
	n := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		ins := builder().Insert("words").Columns("word")
		for _, w := range batch {
			ins.Values(w)
		}
		q, args := ins.Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			return fmt.Errorf("insert words: %w", err)
		}
		n += len(batch)
		batch = batch[:0]
		return nil
	}
	for _, w := range list {
		w = strings.TrimRightFunc(w, unicode.IsSpace)
		if w == "" {
			continue
		}
		batch = append(batch, w)
		if len(batch) == insertBatch {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func (r *wordRepo) Words(ctx context.Context) ([]string, error) {
	q, args := builder().Select("word").
		From(entsql.Table("words")).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func (r *wordRepo) CountWords(ctx context.Context) (int, error) {
	q, args := builder().Select(entsql.Count("*")).
		From(entsql.Table("words")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}
