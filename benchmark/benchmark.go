// benchmark.go
// Measures execution time and memory usage of any subcommand

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Usage is the resource use of one wrapped call.
type Usage struct {
	Label      string
	Elapsed    time.Duration
	AllocMB    float64
	TotalMB    float64
	HeapMB     float64
	GCCycles   uint32
	Goroutines [2]int
}

// Run wraps f, measures its runtime and memory use and prints the report to
// w. The error returned by f is passed through unchanged.
func Run(w io.Writer, label string, f func() error) (Usage, error) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	err := f()

	u := Usage{Label: label, Elapsed: time.Since(start)}
	runtime.ReadMemStats(&memEnd)
	u.AllocMB = mb(int64(memEnd.Alloc) - int64(memStart.Alloc))
	u.TotalMB = mb(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	u.HeapMB = mb(int64(memEnd.HeapAlloc))
	u.GCCycles = memEnd.NumGC - memStart.NumGC
	u.Goroutines = [2]int{startGoroutines, runtime.NumGoroutine()}

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", u.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", u.AllocMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", u.TotalMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", u.HeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", u.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d → %d\n", u.Goroutines[0], u.Goroutines[1])
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")

	return u, err
}

func mb(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}
