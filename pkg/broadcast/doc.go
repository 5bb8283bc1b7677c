// Package broadcast provides a small generic one-to-many fan-out.
//
//	b := broadcast.NewMemoryBroadcaster[Toast](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[Toast]{Data: toast})
//
//	for msg := range sub.Receive() {
//		render(msg.Data)
//	}
//
// Sends never block: a subscriber whose buffer is full is dropped and its
// channel closed, so a stalled client cannot hold up the rest.
package broadcast
