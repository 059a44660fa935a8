// Package errkind builds caller-selected errors from a message and an
// optional cause.
//
// A Kind is the definition of an error type; the values returned by
// Construct and ConstructWithCause are its instances. Callers describe the
// error type they want once, with plain constructor functions, and hand the
// Kind to any code that needs to fail "with an error of my choosing":
//
//	type QuotaError struct{ msg string; cause error }
//
//	var Quota = errkind.Define("quota",
//	    func(msg string) *QuotaError { return &QuotaError{msg: msg} },
//	    func(msg string, cause error) *QuotaError { return &QuotaError{msg: msg, cause: cause} },
//	)
//
//	err := validator.Positive(limit, "limit", Quota) // *QuotaError on failure
//
// # Construction failures
//
// Construct and ConstructWithCause never return nil. If a kind cannot produce
// an instance (nil kind, missing constructor, constructor returned nil) the
// result is a *NotConstructibleError matching ErrNotConstructible, so a
// failed validation can never turn into a silent success.
//
// # Registry
//
// Registry maps kind names to kinds for callers that pick the error type from
// configuration or command line flags. The package itself holds no global
// state; every function is safe for concurrent use.
package errkind
