package dbx

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	labelTransientTx   = "TransientTransactionError"
	labelUnknownCommit = "UnknownTransactionCommitResult"
)

// SessionContext binds ctx to sess so that collection operations issued with
// the returned context join the session's transaction. A nil session leaves
// ctx untouched.
func SessionContext(ctx context.Context, sess mongo.Session) context.Context {
	if sess == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, sess)
}

// IsDuplicateKey reports a unique index violation (E11000).
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsTransientTxError reports errors labelled by the server as safe to retry
// as a whole transaction, write conflicts included.
func IsTransientTxError(err error) bool {
	return hasLabel(err, labelTransientTx)
}

// IsUnknownCommitResult reports a commit whose outcome is unknown. The
// transaction may already be applied, so only the commit itself may be
// retried, on the same session.
func IsUnknownCommitResult(err error) bool {
	return hasLabel(err, labelUnknownCommit)
}

func hasLabel(err error, label string) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorLabel(label)
	}
	return false
}
