// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/story, domain/task).
// This root package holds the sentinel error taxonomy, the typed error values
// that wrap it, and the input validators applied before any business logic runs.
package domain
