package errframe

import "testing"

func TestThrowWithNoHandlerReportsFalse(t *testing.T) {
	f := NewFrame()
	_, ok := f.Throw(New(InvalidToken, "boom"))
	if ok {
		t.Error("Throw on an empty frame should report ok=false")
	}
	last, ok := f.LastError()
	if !ok || last.Kind != InvalidToken {
		t.Error("Throw should still record the error as LastError even with no handler")
	}
}

func TestCatchThrowInvokesHandlerAndPopsFrame(t *testing.T) {
	f := NewFrame()
	var caught *KernelError
	f.Catch(State{Precision: 53}, func(err *KernelError) { caught = err })
	if f.Depth() != 1 {
		t.Fatalf("Depth() after Catch = %d, want 1", f.Depth())
	}
	state, ok := f.Throw(New(Dimension, "mismatched shapes"))
	if !ok {
		t.Fatal("Throw with an installed handler should report ok=true")
	}
	if caught == nil || caught.Kind != Dimension {
		t.Error("handler should have been invoked with the thrown error")
	}
	if state.Precision != 53 {
		t.Errorf("Throw returned state.Precision = %d, want 53", state.Precision)
	}
	if f.Depth() != 0 {
		t.Errorf("Throw should pop the frame, Depth() = %d, want 0", f.Depth())
	}
}

func TestUncatchPopsWithoutInvokingHandler(t *testing.T) {
	f := NewFrame()
	called := false
	f.Catch(State{}, func(err *KernelError) { called = true })
	f.Uncatch()
	if f.Depth() != 0 {
		t.Error("Uncatch should pop the frame")
	}
	if called {
		t.Error("Uncatch must not invoke the handler")
	}
}

func TestNestedFramesUnwindInLIFOOrder(t *testing.T) {
	f := NewFrame()
	var order []int
	f.Catch(State{}, func(err *KernelError) { order = append(order, 1) })
	f.Catch(State{}, func(err *KernelError) { order = append(order, 2) })
	f.Throw(New(Memory, "first"))
	f.Throw(New(Memory, "second"))
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("handlers fired in order %v, want [2 1]", order)
	}
}

func TestMemoryExhaustedFormatsHumanReadableSizes(t *testing.T) {
	err := MemoryExhausted(1024, 0)
	if err.Kind != Memory {
		t.Errorf("MemoryExhausted kind = %s, want Memory", err.Kind)
	}
}
