// Package benchreport runs the throughput/ping-pong benchmarks the
// specification explicitly places out of scope ("a conforming
// implementation may omit [the benchmarking harness] entirely") and
// renders the results as a chart, mirroring the teacher's own
// inclusion of go-echarts purely to visualize its ring-buffer
// benchmarks.
package benchreport

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mpmcq/lfring"
)

// Result is one row of a benchmark run: a labeled variant/capacity
// combination and its measured cost.
type Result struct {
	Name      string
	NsPerOp   float64
	OpsPerSec float64
}

// queueCapacities are the capacities exercised by every variant in a
// report run. Kept to three sizes to bound the run time of
// `cmd/benchreport`.
var queueCapacities = []uint64{64, 1024, 65536}

// Run executes the standard sweep (SPSC and MPMC, every variant, every
// capacity in queueCapacities) via testing.Benchmark and returns one
// Result per combination, followed by one ping-pong Result, in a
// stable order.
func Run() []Result {
	var results []Result
	for _, cap_ := range queueCapacities {
		results = append(results, runSPSC(cap_)...)
		results = append(results, runMPMC(cap_)...)
	}
	results = append(results, runPingPong())
	return results
}

func runSPSC(capacity uint64) []Result {
	return []Result{
		measure(nameFor("AtomicQueue/SPSC", capacity), spscBench(func() (*lfring.AtomicQueue[int], error) {
			return lfring.NewAtomicQueue[int](capacity, lfring.WithSPSC(true))
		})),
		measure(nameFor("StateQueue/SPSC", capacity), spscBench(func() (*lfring.StateQueue[int], error) {
			return lfring.NewStateQueue[int](capacity, lfring.WithSPSC(true))
		})),
		measure(nameFor("MutexQueue/SPSC", capacity), spscBench(func() (*lfring.MutexQueue[int], error) {
			return lfring.NewMutexQueue[int](capacity, nil)
		})),
	}
}

func runMPMC(capacity uint64) []Result {
	return []Result{
		measure(nameFor("AtomicQueue/MPMC", capacity), mpmcBench(func() (*lfring.AtomicQueue[int], error) {
			return lfring.NewAtomicQueue[int](capacity)
		})),
		measure(nameFor("StateQueue/MPMC", capacity), mpmcBench(func() (*lfring.StateQueue[int], error) {
			return lfring.NewStateQueue[int](capacity)
		})),
		measure(nameFor("MutexQueue/MPMC", capacity), mpmcBench(func() (*lfring.MutexQueue[int], error) {
			return lfring.NewMutexQueue[int](capacity, &lfring.Spinlock{})
		})),
	}
}

func nameFor(label string, capacity uint64) string {
	return fmt.Sprintf("%s/cap=%d", label, capacity)
}

// spscBench builds the b.N-scaled single-producer/single-consumer
// benchmark body for a constructor, one producer goroutine racing one
// consumer goroutine, with at most the queue's capacity in flight.
func spscBench[Q lfring.Queue[int]](newQueue func() (Q, error)) func(b *testing.B) {
	return func(b *testing.B) {
		q, err := newQueue()
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				q.Push(i)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				q.Pop()
			}
		}()
		wg.Wait()
	}
}

// mpmcBench runs b.RunParallel over a mix of pushers and poppers
// sharing a single queue, the same shape as the retrieved corpus's
// concurrent benchmarks (see other_examples' BenchmarkVSA_Update_Concurrent).
// Both sides use the non-blocking Try* calls: b.RunParallel gives each
// shard its own slice of pb.Next() iterations, and a shard can run dry
// on either side before its partner does, so a blocking Push/Pop here
// could spin forever past the end of the benchmark.
func mpmcBench[Q lfring.Queue[int]](newQueue func() (Q, error)) func(b *testing.B) {
	return func(b *testing.B) {
		q, err := newQueue()
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		var counter atomic.Int64
		b.RunParallel(func(pb *testing.PB) {
			producer := counter.Add(1)%2 == 0
			for pb.Next() {
				if producer {
					q.TryPush(1)
				} else {
					q.TryPop()
				}
			}
		})
	}
}

// runPingPong measures the two-queue ping-pong scenario from the
// specification's testable properties (§8, scenario 5): thread X
// pushes into A then pops from B, thread Y pops from A then pushes
// into B, for N round trips.
func runPingPong() Result {
	return measure("PingPong/cap8", func(b *testing.B) {
		a, err := lfring.NewAtomicQueue[int](8, lfring.WithSPSC(true))
		if err != nil {
			b.Fatal(err)
		}
		bq, err := lfring.NewAtomicQueue[int](8, lfring.WithSPSC(true))
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				a.Push(i)
				bq.Pop()
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				v := a.Pop()
				bq.Push(v)
			}
		}()
		wg.Wait()
	})
}

func measure(name string, f func(b *testing.B)) Result {
	r := testing.Benchmark(f)
	nsPerOp := float64(r.T.Nanoseconds()) / float64(r.N)
	opsPerSec := 0.0
	if nsPerOp > 0 {
		opsPerSec = 1e9 / nsPerOp
	}
	return Result{Name: name, NsPerOp: nsPerOp, OpsPerSec: opsPerSec}
}
