package chunksort

import "runtime"

/*
Concurrency returns the amount of parallelism available to this process, as
determined by runtime.GOMAXPROCS(0). It is the basis for sizing the worker
pool of a sort engine: the engine counts the goroutine that initiates a sort
as one unit of parallelism and spawns at most Concurrency()-1 workers on top
of it.
*/
func Concurrency() int {
	return runtime.GOMAXPROCS(0)
}
