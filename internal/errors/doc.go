// Package errors provides structured error handling for the crafting-api project.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("entity not found")
//	err := errors.InvalidArgumentf("invalid quantity: %d", qty)
//
// Adding metadata:
//
//	err := errors.NotFound("entity not found").
//	    WithMeta("kind", ref.Kind).
//	    WithMeta("id", ref.ID)
//
// Wrapping errors:
//
//	if err := repo.GetSnapshot(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to read inventory")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("party_id", input.PartyID, vb)
//	errors.ValidateRange("columns", cfg.Columns, 1, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, FailedPrecondition)
//   - Include relevant keys in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Treat craftability failures as outcomes, not errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes to transport replies via GetCode/HTTPStatus
//   - Extract user-friendly messages with GetMessage
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation lost a concurrent update race
//   - Internal: Internal server error
//   - Unavailable: Backing store temporarily unavailable
package errors
