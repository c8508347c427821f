package cache

import (
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache.
// RunParallel spawns GOMAXPROCS goroutines; string keys include
// strconv/concat costs, which is fine for an end-to-end benchmark.
func benchmarkMix(b *testing.B, readsPct int) {
	k, err := Build(Options{RootPath: b.TempDir(), Workers: 8})
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	b.Cleanup(func() { _ = k.Close() })

	for i := 0; i < 2048; i++ {
		key := "k:" + strconv.Itoa(i)
		<-k.SetCh(key, []byte("v"), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seed int64 = 1
	keyMask := (1 << 11) - 1

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(atomic.AddInt64(&seed, 1)))
		i := 0
		for pb.Next() {
			key := "k:" + strconv.Itoa(i&keyMask)
			if r.Intn(100) < readsPct {
				<-k.GetCh(key)
			} else {
				<-k.SetCh(key, []byte("v"), 0)
			}
			i++
		}
	})
}

func BenchmarkKeeper_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkKeeper_50r50w(b *testing.B) { benchmarkMix(b, 50) }

// benchmarkShardIsolation compares a single-worker/one-shard-like
// workload against a multi-worker run, giving a rough measure of the
// shard-isolation throughput gain the testable properties call for.
func benchmarkShardIsolation(b *testing.B, workers int) {
	k, err := Build(Options{RootPath: b.TempDir(), Workers: workers})
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	b.Cleanup(func() { _ = k.Close() })

	keys := []string{"alpha", "omega"} // keys chosen to land in distinct shards

	b.ResetTimer()
	replies := make([]<-chan Result, len(keys))
	for i := 0; i < b.N; i++ {
		for j, key := range keys {
			replies[j] = k.SetCh(key, []byte("v"), 0)
		}
		for _, r := range replies {
			<-r
		}
	}
}

func BenchmarkKeeper_ShardIsolation_OneWorker(b *testing.B)  { benchmarkShardIsolation(b, 1) }
func BenchmarkKeeper_ShardIsolation_TwoWorkers(b *testing.B) { benchmarkShardIsolation(b, 2) }
