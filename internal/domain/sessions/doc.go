// Package sessions defines the booking session entity: a named recurring
// time window during which boats may be booked, together with its schema
// rules and the contracts for storing and serving sessions.
package sessions
