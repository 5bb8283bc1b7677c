// Package async offers small generic helpers for running work concurrently.
//
//	f := async.Go(ctx, func(ctx context.Context) (*Item, error) {
//		return client.Item(ctx, id)
//	})
//	item, err := f.Await(ctx)
//
// Map fans a slice out over a bounded number of goroutines and is what the
// CLI uses to fire a burst of simulations at once:
//
//	results, err := async.Map(ctx, runs, 4, simulate)
package async
