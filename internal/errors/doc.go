// Package errors provides coded errors for the rpg-sheet-api project.
//
// Every failure leaving a repository or orchestrator is an *Error carrying a
// Code, a caller-facing Message, an optional Cause and optional metadata.
// The GraphQL layer converts errors with ToGraphQL, which keeps the code and
// message for client-visible codes and hides everything else behind
// "internal error".
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidState("no spell slots remaining").WithMeta("level", level)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping errors:
//
//	if err := db.First(&c).Error; err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Wrap keeps the code of a wrapped *Error and defaults to CodeInternal for
// anything else. WrapWithCode replaces the code.
//
// # Error Checking
//
//	if errors.IsUnauthenticated(err) {
//	    // redirect to sign-in
//	}
//
//	code := errors.GetCode(err)
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound when a row is absent or not owned by the caller; the two
//     cases must be indistinguishable
//   - Wrap gorm errors with context (they become CodeInternal)
//
// Orchestrator layer:
//   - Return Unauthenticated before touching storage when no user is given
//   - Validate inputs and return InvalidArgument errors
//   - Return InvalidState for domain rule violations, before issuing the write
//
// Handler layer:
//   - Convert errors with ToGraphQL
//   - Log internal errors with their cause
//
// # Error Codes
//
//   - Unauthenticated: no verified identity
//   - NotFound: record absent or owned by another user
//   - InvalidState: domain rule violation
//   - InvalidArgument: malformed input
//   - Internal: unexpected storage or infrastructure failure
//   - Unavailable: dependency temporarily unavailable
//   - Canceled / DeadlineExceeded: request context ended
package errors
