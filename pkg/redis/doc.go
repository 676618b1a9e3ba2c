// Package redis connects to Redis with go-redis and exposes set membership as
// a lookup source for the validator's Unique and Exists rules.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	emails := redis.NewSetChecker(client, "users:emails")
//	validator.RuleFor(b, "Email", in.Email).Async(validator.Unique(emails))
//
// Healthcheck returns a ping probe suitable for readiness endpoints.
package redis
