package mandel

import (
	"errors"
	"slices"
	"testing"
)

type squared struct {
	input, output int
}

func TestPipelineProcessesEveryInput(t *testing.T) {
	inputs := make([]int, 1000)
	for i := range inputs {
		inputs[i] = i
	}

	got := make(map[int]int, len(inputs))
	err := Pipeline(slices.Values(inputs),
		func(n int) squared { return squared{input: n, output: n * n} },
		func(s squared) { got[s.input] = s.output },
		4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("consumed %d results, want %d", len(got), len(inputs))
	}
	for n, sq := range got {
		if sq != n*n {
			t.Errorf("input %d: got %d, want %d", n, sq, n*n)
		}
	}
}

func TestPipelineSingleWorker(t *testing.T) {
	var outputs []int
	err := Pipeline(slices.Values([]int{3, 1, 4, 1, 5}),
		func(n int) int { return n * 10 },
		func(n int) { outputs = append(outputs, n) },
		1)
	if err != nil {
		t.Fatal(err)
	}
	// one worker keeps completion order equal to input order
	if want := []int{30, 10, 40, 10, 50}; !slices.Equal(outputs, want) {
		t.Errorf("got %v, want %v", outputs, want)
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	consumed := false
	err := Pipeline(slices.Values([]int(nil)),
		func(n int) int { return n },
		func(int) { consumed = true },
		3)
	if err != nil {
		t.Fatal(err)
	}
	if consumed {
		t.Error("consume called with no inputs")
	}
}

func TestPipelineWorkerPanicSurfaced(t *testing.T) {
	err := Pipeline(slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8}),
		func(n int) int {
			if n == 5 {
				panic("bad cell")
			}
			return n
		},
		func(int) {},
		2)
	if err == nil {
		t.Fatal("worker panic not surfaced")
	}
	var pErr *PipelineError
	if !errors.As(err, &pErr) {
		t.Fatalf("got %T, want *PipelineError", err)
	}
	if pErr.Recovered != "bad cell" {
		t.Errorf("recovered payload: got %v", pErr.Recovered)
	}
}

func TestPipelineProducerPanicSurfaced(t *testing.T) {
	inputs := func(yield func(int) bool) {
		yield(1)
		panic("source broke")
	}
	err := Pipeline(inputs,
		func(n int) int { return n },
		func(int) {},
		2)
	var pErr *PipelineError
	if !errors.As(err, &pErr) {
		t.Fatalf("got %v, want *PipelineError", err)
	}
}

func TestPipelineRemainingWorkDrainsAfterFault(t *testing.T) {
	// a fault fails the run but must not deadlock the remaining items
	inputs := make([]int, 10000)
	for i := range inputs {
		inputs[i] = i
	}
	consumed := 0
	err := Pipeline(slices.Values(inputs),
		func(n int) int {
			if n == 17 {
				panic("fault early, keep draining")
			}
			return n
		},
		func(int) { consumed++ },
		3)
	if err == nil {
		t.Fatal("fault not surfaced")
	}
	if consumed != len(inputs)-1 {
		t.Errorf("consumed %d, want %d", consumed, len(inputs)-1)
	}
}

func TestPipelineWorkerCountFloor(t *testing.T) {
	count := 0
	err := Pipeline(slices.Values([]int{1, 2, 3}),
		func(n int) int { return n },
		func(int) { count++ },
		0)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("consumed %d, want 3", count)
	}
}
