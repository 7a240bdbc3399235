// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (digits, sequences, test reports) and contracts
// (interfaces) only.
package domain
