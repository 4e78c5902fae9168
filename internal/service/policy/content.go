package policy

import (
	"fmt"
	"strings"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

// CheckText rejects any text containing a blocked term, case-insensitive
// substring match. Blank inputs pass. Word lists are policy data, so this
// reads the current snapshot on every call.
func (s *Service) CheckText(texts ...string) error {
	terms := s.Snapshot().BlockedTerms
	if len(terms) == 0 {
		return nil
	}

	for _, text := range texts {
		lowered := strings.ToLower(text)
		for _, term := range terms {
			if term == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(term)) {
				return domain.NewValidationError("content", fmt.Sprintf("text contains blocked term %q", term))
			}
		}
	}
	return nil
}
