package service

import (
	"context"

	"taskboard/internal/domain"
)

// owned is any resource that records the user it belongs to.
type owned interface {
	OwnerID() string
}

// requireOwner loads a resource and checks the caller owns it. A missing
// row is domain.ErrNotFound; a row owned by someone else is
// domain.ErrForbidden. The two stay distinct so callers can tell an absent
// resource from a denied one.
func requireOwner[T owned](ctx context.Context, find func(context.Context, string) (T, error), id, callerID string) (T, error) {
	res, err := find(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if res.OwnerID() != callerID {
		var zero T
		return zero, domain.ErrForbidden
	}
	return res, nil
}
