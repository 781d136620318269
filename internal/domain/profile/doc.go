// Package profile defines the club profile: the full configuration bundle
// for one club deployment (identity, branding, sessions, integration
// endpoint), its aggregate schema rules and the default profile generator.
//
// Integration credentials are deliberately unrepresentable here. They are
// sourced separately at runtime and must never travel with the profile.
package profile
