package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SetChecker answers lookup rules from a Redis set: a value exists when it is
// a member of the set stored at Key. It satisfies validator.Checker.
type SetChecker struct {
	client redis.Cmdable
	key    string
}

func NewSetChecker(client redis.Cmdable, key string) *SetChecker {
	return &SetChecker{client: client, key: key}
}

func (c *SetChecker) Key() string { return c.key }

// Exists reports whether value is a member of the set.
func (c *SetChecker) Exists(ctx context.Context, value string) (bool, error) {
	ok, err := c.client.SIsMember(ctx, c.key, value).Result()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, errors.Join(ErrLookupFailed, err)
	}
	return ok, nil
}
