// Package validation provides the primitive format predicates and the
// violation set used by every schema in the application.
//
// Validators never normalize their input and never short-circuit: a schema
// collects every violation it finds and reports them together, so a caller
// sees the complete diagnostic in a single pass.
package validation
