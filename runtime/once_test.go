package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnceBarrier_RunsInitExactlyOnceUnderConcurrency(t *testing.T) {
	var barrier OnceBarrier
	var runs int32
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			barrier.Do(func() { runs++ })
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), runs)
}

func TestInit_SecondCallPanics(t *testing.T) {
	processInitialized = 0
	defer func() { processInitialized = 0 }()

	Init()
	assert.Panics(t, func() { Init() })
}
