// Package async provides minimal generic futures for fan-out work.
//
// Async starts a function in its own goroutine and hands back a Future;
// Await blocks for the result; WaitAll gathers a set of futures in argument
// order, which keeps fan-out results deterministic regardless of which
// goroutine finishes first.
//
//	future := async.Async(ctx, chunk, process)
//	result, err := future.Await()
package async
