package restriction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
	"github.com/xunjianyin/rank-anything-sub000/pkg/ctxutil"
)

// RateUser records the caller's like/dislike of another user. Re-rating
// replaces the previous value. A dislike triggers the automatic restriction
// check inside the same transaction as the rating write.
func (s *Service) RateUser(ctx context.Context, input RateUserInput) (domain.UserRating, error) {
	raterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserRating{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.UserRating{}, err
	}
	if input.RatedUserID == raterID {
		return domain.UserRating{}, domain.NewValidationError("rated_user_id", "cannot rate yourself")
	}

	// A restricted user cannot hand out ratings.
	if active, err := s.restrictions.ActiveForUser(ctx, raterID, s.now()); err != nil {
		return domain.UserRating{}, fmt.Errorf("check rater restriction: %w", err)
	} else if active != nil {
		return domain.UserRating{}, fmt.Errorf("restricted until %s: %w",
			active.EndAt.Format(time.RFC3339), domain.ErrRestricted)
	}

	if _, err := s.users.GetByID(ctx, input.RatedUserID); err != nil {
		return domain.UserRating{}, fmt.Errorf("load rated user: %w", err)
	}

	if err := s.limiter.CheckAndIncrement(ctx, raterID, domain.UsageKindUserRating); err != nil {
		return domain.UserRating{}, err
	}

	var rating domain.UserRating
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		rating, upsertErr = s.ratings.Upsert(txCtx, domain.UserRating{
			ID:          uuid.New(),
			RaterID:     raterID,
			RatedUserID: input.RatedUserID,
			Value:       input.Value,
			CreatedAt:   s.now().UTC(),
		})
		if upsertErr != nil {
			return fmt.Errorf("record user rating: %w", upsertErr)
		}

		if input.Value == domain.UserRatingDislike {
			if err := s.onNegativeRating(txCtx, input.RatedUserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.UserRating{}, err
	}

	s.log.InfoContext(ctx, "user rated",
		slog.String("rater_id", raterID.String()),
		slog.String("rated_user_id", input.RatedUserID.String()),
		slog.String("value", string(rating.Value)),
	)
	return rating, nil
}

// onNegativeRating opens an automatic editing ban when the rated user's
// cumulative dislike count hits a multiple of the trigger step and no ban is
// currently active. Must run inside a transaction: the advisory lock
// serializes concurrent dislike events for the same user.
func (s *Service) onNegativeRating(ctx context.Context, ratedUserID uuid.UUID) error {
	if err := s.restrictions.LockUser(ctx, ratedUserID); err != nil {
		return fmt.Errorf("lock user restrictions: %w", err)
	}

	dislikes, err := s.ratings.CountDislikes(ctx, ratedUserID)
	if err != nil {
		return fmt.Errorf("count dislikes: %w", err)
	}

	p := s.policy.Snapshot()
	if dislikes == 0 || dislikes%p.DislikeTriggerStep != 0 {
		return nil
	}

	now := s.now().UTC()
	active, err := s.restrictions.ActiveForUser(ctx, ratedUserID, now)
	if err != nil {
		return fmt.Errorf("check active restriction: %w", err)
	}
	if active != nil {
		// Trigger point reached during an active ban; no stacking.
		return nil
	}

	created, err := s.restrictions.Create(ctx, domain.UserRestriction{
		ID:        uuid.New(),
		UserID:    ratedUserID,
		Kind:      domain.RestrictionKindEditingBan,
		StartAt:   now,
		EndAt:     now.Add(time.Duration(p.RestrictionHours) * time.Hour),
		Reason:    fmt.Sprintf("automatic ban due to %d dislikes", dislikes),
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("create restriction: %w", err)
	}

	s.log.InfoContext(ctx, "editing ban opened",
		slog.String("user_id", ratedUserID.String()),
		slog.Int("dislikes", dislikes),
		slog.Time("end_at", created.EndAt),
	)
	return nil
}
