package runtime

import (
	"sync"
	"sync/atomic"
)

// OnceBarrier is trill_once: a lazily-initialized global's guard,
// generated once per `let` with a computed initializer at file scope.
// Built on sync.Once rather than a hand-rolled spinlock, since the
// barrier's only job — run init exactly once, block concurrent callers
// until it has — is exactly what sync.Once already guarantees.
type OnceBarrier struct {
	once sync.Once
}

// Do runs init the first time Do is called on b, and blocks any
// concurrent caller until that first run completes.
func (b *OnceBarrier) Do(init func()) {
	b.once.Do(init)
}

// processInitialized guards Init against being called more than once
// per process.
var processInitialized int32

// Init is trill_init: the process-wide startup routine a generated
// program's entry point calls before running `main`. Unlike
// OnceBarrier, a second call is a programmer error rather than a
// no-op — a Trill program is never expected to call its own entry
// point's setup twice — so it panics instead of silently returning.
func Init() {
	if !atomic.CompareAndSwapInt32(&processInitialized, 0, 1) {
		panic("runtime: trill_init called more than once")
	}
}
