// Package domain contains core business types for the Disha platform.
//
// This file defines the thin user identity carried through request contexts.
// Identity itself is delegated to a third-party provider; the backend only
// sees verified token claims, never credentials.
package domain

// User is the authenticated identity for a request. ID is the token subject
// assigned by the identity provider and keys all per-user records.
type User struct {
	ID    string
	Email string
	Name  string
}
