// Package apperrors defines structured application error types, allowing
// for a clear distinction between error classes (configuration, validation)
// and for carrying the underlying cause.
//
// The numeric core itself never produces errors; by contract it is total.
// Everything here concerns the application shell: flags, environment,
// option validation, and process exit codes.
package apperrors
