package pdf

import "fmt"

// VersionError is returned by ParseVersion when given a string that does
// not name one of the supported PDF versions.
type VersionError struct {
	Got string
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("pdf: unsupported version %q", err.Got)
}

// InvalidPasswordError is returned at document construction when a
// password cannot be represented under the rules of the chosen security
// handler revision (R2-R4 requires every code point to fit a single byte;
// R5 requires the password to survive SASLprep).
type InvalidPasswordError struct {
	Reason string
}

func (err *InvalidPasswordError) Error() string {
	return "pdf: invalid password: " + err.Reason
}

// NoPasswordConfiguredError is returned when the security handler is
// constructed without either a user or an owner password. NewWriter only
// constructs one when a password is set, so Permissions given without a
// password leave the document unencrypted rather than causing this error.
type NoPasswordConfiguredError struct{}

func (err *NoPasswordConfiguredError) Error() string {
	return "pdf: encryption requires a user or owner password"
}

// WriteAfterEndError indicates that a producer tried to write to, or
// mutate the dictionary of, an indirect object handle after End had
// already been called on it.
type WriteAfterEndError struct {
	Ref Reference
}

func (err *WriteAfterEndError) Error() string {
	return fmt.Sprintf("pdf: write to %s after End", err.Ref)
}

// EmptyDocumentError is returned by Writer.Close when Catalog.Pages has not
// been set. Close does not inspect the page tree itself, so a page tree with
// no kids is not rejected.
type EmptyDocumentError struct{}

func (err *EmptyDocumentError) Error() string {
	return "pdf: document has no pages"
}
