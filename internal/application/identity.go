package application

// Identity is the authenticated principal derived from a validated access
// token.
type Identity struct {
	AccountID string
	IsAdmin   bool
}

// The authorization predicates are pure functions of the identity and the
// target account; they are evaluated on every request and never cached,
// since roles and ownership can change between requests.

func IsAdmin(id Identity) bool { return id.IsAdmin }

func IsSelf(id Identity, targetID string) bool { return id.AccountID == targetID }

func IsSelfOrAdmin(id Identity, targetID string) bool {
	return IsSelf(id, targetID) || IsAdmin(id)
}
