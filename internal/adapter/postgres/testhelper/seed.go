package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$seeded-hash-not-a-real-one-" + suffix,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates a topic owned by creatorID and returns its id.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, name, description, creator_id)
		 VALUES ($1, $2, $3, $4)`,
		id, "topic-"+uniqueSuffix(), "seeded topic", creatorID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}
	return id
}

// SeedObject creates an object inside topicID and returns its id.
func SeedObject(t *testing.T, pool *pgxpool.Pool, topicID, creatorID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO objects (id, topic_id, name, tags, creator_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, topicID, "object-"+uniqueSuffix(), []string{"seeded"}, creatorID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObject insert object: %v", err)
	}
	return id
}

// SeedRating creates a rating of objectID by userID and returns its id.
func SeedRating(t *testing.T, pool *pgxpool.Pool, objectID, userID uuid.UUID, score int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO ratings (id, object_id, user_id, score, review)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, objectID, userID, score, "seeded review",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRating insert rating: %v", err)
	}
	return id
}

// SeedProposal creates a pending proposal and returns it.
func SeedProposal(t *testing.T, pool *pgxpool.Pool, proposerID uuid.UUID, tt domain.TargetType, targetID uuid.UUID, kind domain.ProposalKind, value map[string]any) domain.Proposal {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Proposal{
		ID:            uuid.New(),
		Kind:          kind,
		TargetType:    tt,
		TargetID:      targetID,
		ProposerID:    proposerID,
		ProposedValue: value,
		Status:        domain.ProposalStatusPending,
		CreatedAt:     now,
	}

	var payload []byte
	if value != nil {
		var err error
		payload, err = json.Marshal(value)
		if err != nil {
			t.Fatalf("testhelper: SeedProposal marshal value: %v", err)
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO proposals (id, kind, target_type, target_id, proposer_id, proposed_value, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, string(p.Kind), string(p.TargetType), p.TargetID, p.ProposerID, payload, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProposal insert proposal: %v", err)
	}
	return p
}

// SeedVote records a vote on proposalID by voterID.
func SeedVote(t *testing.T, pool *pgxpool.Pool, proposalID, voterID uuid.UUID, approve bool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO proposal_votes (id, proposal_id, voter_id, approve)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New(), proposalID, voterID, approve,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote insert vote: %v", err)
	}
}
