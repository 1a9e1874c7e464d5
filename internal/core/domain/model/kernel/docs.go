// Package kernel provides core domain primitives for the order-taking system.
// It implements fundamental bounded value types following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - String50: A non-empty string value object bounded to 50 characters
//   - EmailAddress: A string value object matching an email-shaped pattern
//   - ZipCode: A string value object of exactly 5 ASCII digits
//
// Each type is unrepresentable-by-construction: the only public way to obtain
// an instance is its validating constructor, and once an instance exists its
// invariant holds for its entire lifetime. The zero value of every type fails
// Validate, which the embedded constructor guard enforces.
//
// These primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
