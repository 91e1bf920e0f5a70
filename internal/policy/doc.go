// Package policy decides whether a requester may read or change a resource.
//
// Every function is pure: it receives the already loaded resource (nil when
// the lookup found nothing) and the requester's session claims, and returns a
// [Decision]. Existence is always checked first, so a missing resource yields
// [NotFound] regardless of who asks.
package policy
