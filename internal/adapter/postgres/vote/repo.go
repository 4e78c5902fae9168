// Package vote implements the proposal-vote repository using PostgreSQL.
// The (proposal_id, voter_id) unique constraint is the authority on
// double-voting: concurrent duplicate votes resolve to exactly one success.
package vote

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

const table = "proposal_votes"

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a vote. A duplicate (proposal, voter) pair maps to
// domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "proposal_id", "voter_id", "approve", "created_at").
		Values(v.ID, v.ProposalID, v.VoterID, v.Approve, v.CreatedAt).
		Suffix("RETURNING id, proposal_id, voter_id, approve, created_at").
		ToSql()
	if err != nil {
		return domain.Vote{}, fmt.Errorf("vote build insert: %w", err)
	}

	var created domain.Vote
	err = q.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.ProposalID, &created.VoterID, &created.Approve, &created.CreatedAt)
	if err != nil {
		return domain.Vote{}, postgres.MapError(err, "vote", v.ID)
	}
	return created, nil
}

// Tally returns the vote count for a proposal in a single aggregate query.
func (r *Repo) Tally(ctx context.Context, proposalID uuid.UUID) (domain.Tally, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)", "COUNT(*) FILTER (WHERE approve)").
		From(table).
		Where(squirrel.Eq{"proposal_id": proposalID}).
		ToSql()
	if err != nil {
		return domain.Tally{}, fmt.Errorf("vote build tally: %w", err)
	}

	var tally domain.Tally
	if err := q.QueryRow(ctx, sql, args...).Scan(&tally.Total, &tally.Approvals); err != nil {
		return domain.Tally{}, postgres.MapError(err, "vote tally", proposalID)
	}
	return tally, nil
}

// ListByProposal returns the votes on a proposal, oldest first.
func (r *Repo) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "proposal_id", "voter_id", "approve", "created_at").
		From(table).
		Where(squirrel.Eq{"proposal_id": proposalID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("vote build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("vote list: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.ProposalID, &v.VoterID, &v.Approve, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("vote scan: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vote rows: %w", err)
	}

	return votes, nil
}
