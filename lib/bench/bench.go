// Package bench measures local digest throughput per algorithm. The result
// gives the statistics reporter a host-specific baseline for expected
// attempts per second.
package bench

import (
	"context"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/p1xelfault/guesslab/lib/oracle"
	"github.com/p1xelfault/guesslab/simstate"
)

const checkEvery = 1024 // Attempts between clock checks in the tight loop

// Result is the outcome of one algorithm's throughput measurement.
type Result struct {
	Algorithm       string        `json:"algorithm"`
	Hashes          uint64        `json:"hashes"`
	Elapsed         time.Duration `json:"elapsed"`
	HashesPerSecond float64       `json:"hashes_per_second"`
	Platform        string        `json:"platform,omitempty"`
}

// Run measures how many digests of the given algorithm the host computes in
// the given duration. The candidate input rotates so the loop is not folded
// away by caching.
func Run(ctx context.Context, algorithm oracle.Algorithm, duration time.Duration) (Result, error) {
	result := Result{Algorithm: string(algorithm)}

	if info, err := host.Info(); err == nil {
		result.Platform = info.Platform
	}

	deadline := time.Now().Add(duration)
	started := time.Now()

	var hashes uint64

	for {
		for range checkEvery {
			candidate := "bench" + strconv.FormatUint(hashes, 36)
			if _, err := oracle.Compute(candidate, algorithm); err != nil {
				return Result{}, err
			}
			hashes++
		}

		if err := ctx.Err(); err != nil {
			break
		}

		if time.Now().After(deadline) {
			break
		}
	}

	result.Hashes = hashes
	result.Elapsed = time.Since(started)

	if seconds := result.Elapsed.Seconds(); seconds > 0 {
		result.HashesPerSecond = float64(hashes) / seconds
	}

	simstate.Logger.Info("Benchmark result",
		"algorithm", result.Algorithm,
		"hashes", humanize.Comma(int64(result.Hashes)), //nolint:gosec // Bounded by benchmark duration
		"elapsed", result.Elapsed.Round(time.Millisecond),
		"hashes_per_second", humanize.CommafWithDigits(result.HashesPerSecond, 0))

	return result, nil
}

// RunAll measures every supported algorithm in a fixed order.
func RunAll(ctx context.Context, duration time.Duration) ([]Result, error) {
	algorithms := []oracle.Algorithm{oracle.SHA256, oracle.SHA1, oracle.MD5}
	results := make([]Result, 0, len(algorithms))

	for _, algorithm := range algorithms {
		result, err := Run(ctx, algorithm, duration)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
