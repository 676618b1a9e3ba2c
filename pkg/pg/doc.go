// Package pg connects to PostgreSQL through a pgx pool and exposes column
// lookups as a source for the validator's Unique and Exists rules.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	usernames, err := pg.NewQueryChecker(pool, "users", "username")
//	if err != nil {
//	    return err
//	}
//	validator.RuleFor(b, "Username", in.Username).Async(validator.Unique(usernames))
package pg
