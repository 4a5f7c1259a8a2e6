// Package resilience groups the guards around the database connection.
//
//   - circuitbreaker stops BEGIN from being issued while the database keeps failing
//     (see db.UnitOfWork).
//   - retry re-runs the startup ping while the database is still coming up
//     (see db.Open).
//
//	b := circuitbreaker.New(circuitbreaker.Database())
//	tx, err := circuitbreaker.Run(b, func() (*sqlx.Tx, error) {
//	    return conn.BeginTxx(ctx, nil)
//	})
//
//	err = retry.Do(ctx, retry.StartupPolicy(), "ping database", conn.PingContext)
package resilience
