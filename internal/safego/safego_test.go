package safego

import (
	"sync"
	"testing"
)

func TestRunRecoversPanic(t *testing.T) {
	// Must not crash the test binary.
	Run("test", func() { panic("boom") })
}

func TestRunExecutesFunction(t *testing.T) {
	ran := false
	Run("test", func() { ran = true })
	if !ran {
		t.Fatal("expected fn to run")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	Go("test", func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}
