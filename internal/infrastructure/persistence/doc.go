// Package persistence provides the GORM-backed session store. The schema
// invariants (unique session id, start before end) are enforced by database
// constraints at the storage boundary, not by application code alone.
package persistence
