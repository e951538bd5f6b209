// Package domain contains shared domain types used across entity sub-packages.
// Entities live in sub-packages (domain/publishing). This root package holds
// the sentinel errors and the typed errors that wrap them.
package domain
