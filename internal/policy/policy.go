// Package policy holds the access-control predicate shared by the notes
// and news domains. The predicate is pure: handlers fetch the resource,
// ask for a decision, and map it to an HTTP outcome themselves.
package policy

import "news-notes/internal/domain"

// Decision is the outcome of an access check.
type Decision int

const (
	// Allow permits the operation.
	Allow Decision = iota
	// DenyLogin means the actor is anonymous and must authenticate first.
	DenyLogin
	// DenyNotFound hides the resource: the actor is authenticated but is
	// not the owner, or the resource does not exist. Callers must respond
	// with "not found", never "forbidden", so that ownership failure and
	// non-existence stay indistinguishable.
	DenyNotFound
)

// String returns the decision name, mainly for logs and metrics labels.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyLogin:
		return "deny_login"
	case DenyNotFound:
		return "deny_not_found"
	default:
		return "unknown"
	}
}

// Decide returns the decision for an actor operating on a resource owned
// by ownerID. Pass an empty ownerID when the resource does not exist;
// an authenticated actor then gets DenyNotFound, while an anonymous one
// is still sent to login first, matching the order in which the request
// pipeline checks authentication before existence.
func Decide(actor *domain.User, ownerID string) Decision {
	if actor == nil {
		return DenyLogin
	}
	if ownerID == "" || actor.ID != ownerID {
		return DenyNotFound
	}
	return Allow
}
