// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

// Outcome is the verdict of a policy check.
type Outcome int

const (
	// Allow permits the operation.
	Allow Outcome = iota
	// Deny rejects the operation for this requester.
	Deny
	// NotFound reports that the target resource does not exist.
	NotFound
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Decision couples an [Outcome] with the sentinel error describing it.
// Err is nil when Outcome is Allow.
type Decision struct {
	Outcome Outcome
	Err     error
}

// Allowed reports whether the decision permits the operation.
func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func deny(err error) Decision {
	return Decision{Outcome: Deny, Err: err}
}

func notFound(err error) Decision {
	return Decision{Outcome: NotFound, Err: err}
}
