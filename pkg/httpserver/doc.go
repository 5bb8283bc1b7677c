// Package httpserver runs the served app with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns when ctx is cancelled, after in-flight requests finished or the
// shutdown timeout elapsed. HealthHandler serves liveness and readiness.
package httpserver
