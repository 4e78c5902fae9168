package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BCryptCost < 4 || c.Auth.BCryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BCryptCost)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	limits := map[string]int{
		"daily_topic_limit":       m.DailyTopicLimit,
		"daily_object_limit":      m.DailyObjectLimit,
		"daily_rating_limit":      m.DailyRatingLimit,
		"daily_user_rating_limit": m.DailyUserRatingLimit,
	}
	for name, v := range limits {
		if v <= 0 {
			return fmt.Errorf("%s must be > 0 (got %d)", name, v)
		}
	}

	if m.DislikeTriggerStep <= 0 {
		return fmt.Errorf("dislike_trigger_step must be > 0 (got %d)", m.DislikeTriggerStep)
	}
	if m.RestrictionHours <= 0 {
		return fmt.Errorf("restriction_hours must be > 0 (got %d)", m.RestrictionHours)
	}

	return nil
}
