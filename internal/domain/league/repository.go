package league

import "context"

// Repository persists new leagues. Create writes the whole blueprint in one
// transaction and returns ErrDuplicateInviteCode on an invite code conflict.
type Repository interface {
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, blueprint Blueprint) (Created, error)
}
