package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bogdoslavik/balancer-sor/internal/model"
	"github.com/bogdoslavik/balancer-sor/internal/storage"
)

// Store provides Postgres persistence for canonical pools.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPools inserts or updates canonical pools keyed by pool ID. The
// token vector is stored as JSONB in its storage-record form.
func (s *Store) UpsertPools(ctx context.Context, pools []model.Pool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		record := storage.FromPool(pool)
		tokens, err := json.Marshal(record.Tokens)
		if err != nil {
			return fmt.Errorf("marshal tokens for pool %s: %w", record.ID, err)
		}
		batch.Queue(`
			INSERT INTO pools (
				id, pool_address, pool_type, swap_fee, swap_enabled, tokens, tokens_list,
				total_weight, amp, main_index, wrapped_index, lower_target, upper_target,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
			ON CONFLICT (id)
			DO UPDATE SET
				pool_address = EXCLUDED.pool_address,
				pool_type = EXCLUDED.pool_type,
				swap_fee = EXCLUDED.swap_fee,
				swap_enabled = EXCLUDED.swap_enabled,
				tokens = EXCLUDED.tokens,
				tokens_list = EXCLUDED.tokens_list,
				total_weight = EXCLUDED.total_weight,
				amp = EXCLUDED.amp,
				main_index = EXCLUDED.main_index,
				wrapped_index = EXCLUDED.wrapped_index,
				lower_target = EXCLUDED.lower_target,
				upper_target = EXCLUDED.upper_target,
				updated_at = now()
		`,
			record.ID,
			record.Address,
			record.PoolType,
			record.SwapFee,
			record.SwapEnabled,
			tokens,
			record.TokensList,
			record.TotalWeight,
			record.Amp,
			record.MainIndex,
			record.WrappedIndex,
			record.LowerTarget,
			record.UpperTarget,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadPool returns one canonical pool by ID.
func (s *Store) LoadPool(ctx context.Context, id string) (model.Pool, bool, error) {
	if id == "" {
		return model.Pool{}, false, fmt.Errorf("pool id required")
	}

	record := storage.PoolRecord{}
	var tokens []byte
	row := s.pool.QueryRow(ctx, `
		SELECT id, pool_address, pool_type, swap_fee, swap_enabled, tokens, tokens_list,
		       total_weight, amp, main_index, wrapped_index, lower_target, upper_target
		FROM pools WHERE id=$1
	`, id)
	err := row.Scan(
		&record.ID,
		&record.Address,
		&record.PoolType,
		&record.SwapFee,
		&record.SwapEnabled,
		&tokens,
		&record.TokensList,
		&record.TotalWeight,
		&record.Amp,
		&record.MainIndex,
		&record.WrappedIndex,
		&record.LowerTarget,
		&record.UpperTarget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Pool{}, false, nil
		}
		return model.Pool{}, false, err
	}

	if err := json.Unmarshal(tokens, &record.Tokens); err != nil {
		return model.Pool{}, false, fmt.Errorf("decode tokens for pool %s: %w", id, err)
	}

	pool, err := record.ToPool()
	if err != nil {
		return model.Pool{}, false, err
	}
	return pool, true, nil
}
