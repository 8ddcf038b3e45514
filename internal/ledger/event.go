package ledger

// PrincipalKind distinguishes users from sales teams. Only users have a
// profile to copy onto ledger entries.
type PrincipalKind string

const (
	PrincipalUser PrincipalKind = "user"
	PrincipalTeam PrincipalKind = "team"
)

// PrincipalRef identifies who gained or lost access.
type PrincipalRef struct {
	ID   int64
	Kind PrincipalKind
}

// RecordRef identifies the business record whose access changed.
type RecordRef struct {
	Type RecordType
	ID   int64
}

const (
	EventGrant  = "grant"
	EventRevoke = "revoke"
)

// ShareEvent is the inbound access-control change notification. Kind is one
// of EventGrant/EventRevoke; AccessMask is informational and only present on
// grants.
type ShareEvent struct {
	Kind       string
	Target     RecordRef
	Principal  PrincipalRef
	AccessMask string
}
