package docmgr

import (
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
)

// ReadFailureHandler decides what happens when an imported document
// cannot be read. Returning nil skips the import; returning an error
// aborts the traversal with it.
type ReadFailureHandler func(uri string, err error) error

// LogReadFailure logs the failure and continues.
func LogReadFailure(uri string, err error) error {
	logger.Warnw("failed to read imported document",
		logger.FieldURI, uri,
		logger.FieldError, err.Error())
	return nil
}

// FailOnReadError aborts the traversal.
func FailOnReadError(uri string, err error) error {
	return errors.Wrapf(err, "failed to read import %s", uri)
}
