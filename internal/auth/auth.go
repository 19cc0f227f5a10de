package auth

import (
	"context"
)

type accountKey struct{}

// WithAccount returns a context carrying the caller account id. The id is
// taken as-is from the transport layer, there is no signature verification.
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// Account returns the caller account id carried by the context, or an empty
// string for anonymous calls.
func Account(ctx context.Context) string {
	account, ok := ctx.Value(accountKey{}).(string)
	if !ok {
		return ""
	}
	return account
}

// IsOwner reports whether the caller is the registry owner. The check is
// plain string equality, an empty caller never matches a non-empty owner.
func IsOwner(caller, owner string) bool {
	return caller == owner
}
