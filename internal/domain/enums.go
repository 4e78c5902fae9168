package domain

// ProposalKind is the kind of mutation a moderation proposal requests.
type ProposalKind string

const (
	ProposalKindEdit   ProposalKind = "EDIT"
	ProposalKindDelete ProposalKind = "DELETE"
)

func (k ProposalKind) String() string { return string(k) }

func (k ProposalKind) IsValid() bool {
	switch k {
	case ProposalKindEdit, ProposalKindDelete:
		return true
	}
	return false
}

// TargetType identifies the kind of entity a proposal or history entry refers to.
type TargetType string

const (
	TargetTypeTopic  TargetType = "TOPIC"
	TargetTypeObject TargetType = "OBJECT"
	TargetTypeRating TargetType = "RATING"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeTopic, TargetTypeObject, TargetTypeRating:
		return true
	}
	return false
}

// ProposalStatus is the lifecycle state of a moderation proposal.
// Transitions only PENDING -> APPROVED or PENDING -> REJECTED, never reversed.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

func (s ProposalStatus) String() string { return string(s) }

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusApproved || s == ProposalStatusRejected
}

// HistoryAction is the kind of mutation recorded in the edit-history ledger.
type HistoryAction string

const (
	HistoryActionCreate HistoryAction = "CREATE"
	HistoryActionEdit   HistoryAction = "EDIT"
	HistoryActionDelete HistoryAction = "DELETE"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case HistoryActionCreate, HistoryActionEdit, HistoryActionDelete:
		return true
	}
	return false
}

// UsageKind is a daily-capped creation action.
type UsageKind string

const (
	UsageKindTopic      UsageKind = "TOPIC"
	UsageKindObject     UsageKind = "OBJECT"
	UsageKindRating     UsageKind = "RATING"
	UsageKindUserRating UsageKind = "USER_RATING"
)

func (k UsageKind) String() string { return string(k) }

func (k UsageKind) IsValid() bool {
	switch k {
	case UsageKindTopic, UsageKindObject, UsageKindRating, UsageKindUserRating:
		return true
	}
	return false
}

// UserRatingValue is a peer rating of a user.
type UserRatingValue string

const (
	UserRatingLike    UserRatingValue = "LIKE"
	UserRatingDislike UserRatingValue = "DISLIKE"
)

func (v UserRatingValue) String() string { return string(v) }

func (v UserRatingValue) IsValid() bool {
	switch v {
	case UserRatingLike, UserRatingDislike:
		return true
	}
	return false
}

// UserRole is the authorization role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}
