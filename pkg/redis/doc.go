// Package redis connects to the Redis server used for shared notification
// tickets.
//
// Configuration is read from the environment through Config:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Connect retries the initial ping so the process can start alongside a
// Redis container that is still booting. Healthcheck adapts the client to
// the server's readiness probe.
//
// Errors are sentinels joined with the go-redis cause, so errors.Is works
// against both.
package redis
