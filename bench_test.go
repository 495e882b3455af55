package skiplist

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func BenchmarkMapWorkloads(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}

	workloads := []struct {
		name         string
		writePercent int
	}{
		{name: "ReadMostly", writePercent: 5},
		{name: "WriteHeavy", writePercent: 90},
		{name: "Mixed", writePercent: 50},
	}

	threadCounts := []int{1, 2, 4, 8}
	const keyRange = 1 << 12

	for _, dist := range distributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				b.Run(workload.name, func(b *testing.B) {
					for _, threads := range threadCounts {
						b.Run(fmt.Sprintf("P%d", threads), func(b *testing.B) {
							m := newIntMap(b)
							for i := range keyRange / 2 {
								_, _ = m.Put(i, i)
							}

							var ascendingCounter uint64
							var ops int64

							b.ResetTimer()

							var wg sync.WaitGroup
							wg.Add(threads)
							for tIdx := range threads {
								go func(worker int) {
									defer wg.Done()
									seed := int64(worker+1) * 1_000_003
									r := rand.New(rand.NewSource(seed))
									var zipf *rand.Zipf
									if dist.kind == distZipf {
										zipf = rand.NewZipf(r, 1.2, 1, uint64(keyRange-1))
									}

									for {
										idx := atomic.AddInt64(&ops, 1)
										if idx > int64(b.N) {
											break
										}

										var key int
										switch dist.kind {
										case distUniform:
											key = r.Intn(keyRange)
										case distAscending:
											key = int(atomic.AddUint64(&ascendingCounter, 1)-1) % keyRange
										case distZipf:
											key = int(zipf.Uint64())
										}

										opChoice := r.Intn(100)
										if opChoice < workload.writePercent {
											if r.Intn(2) == 0 {
												_, _ = m.Put(key, r.Intn(1<<16))
											} else {
												_, _ = m.Remove(key)
											}
										} else {
											if r.Intn(2) == 0 {
												_, _ = m.Get(key)
											} else {
												_ = m.Contains(key)
											}
										}
									}
								}(tIdx)
							}

							wg.Wait()
							b.StopTimer()

							stats := m.Stats()
							b.ReportMetric(float64(stats.Level), "top_level")
						})
					}
				})
			}
		})
	}
}

func BenchmarkMapGetWithKeyFilter(b *testing.B) {
	for _, filtered := range []bool{false, true} {
		b.Run(fmt.Sprintf("filter=%t", filtered), func(b *testing.B) {
			var opts []Option
			if filtered {
				opts = append(opts, WithKeyFilter(encodeIntKey, 1<<16, 0.01))
			}
			m := newIntMap(b, opts...)
			for i := range 1 << 15 {
				m.Put(i*2, i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Odd keys are never present.
				m.Get((i%(1<<15))*2 + 1)
			}
		})
	}
}
