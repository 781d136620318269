// Package models holds the GORM database models for the session store
// (infrastructure concern, kept separate from the domain entities).
package models
