package main

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kass/matchmap/pkg/bounds"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/spf13/cobra"
)

// BenchmarkResult summarises one concurrent benchmark run
type BenchmarkResult struct {
	QueryType     string
	TotalQueries  int
	TotalDuration time.Duration
	AvgDuration   time.Duration
	QueriesPerSec float64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	// Hits counts resolutions off the default zone, or urban frames
	Hits int64
}

func (a *app) newBenchCmd() *cobra.Command {
	var (
		queryType  string
		numQueries int
		workers    int
		seed       int64
		jitter     float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run resolve or bounds calls concurrently and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if numQueries <= 0 || workers <= 0 {
				return fmt.Errorf("--queries and --workers must be positive")
			}

			r, err := a.resolver()
			if err != nil {
				return err
			}
			venues := r.Catalog().Entries()
			if len(venues) == 0 {
				return fmt.Errorf("venue catalog is empty")
			}

			var result BenchmarkResult
			switch queryType {
			case "resolve":
				result = benchmarkResolve(r, venues, numQueries, workers, seed, jitter)
			case "bounds":
				c, err := a.calculator()
				if err != nil {
					return err
				}
				result = benchmarkBounds(c, a.cfg.Bounds, venues, numQueries, workers, seed, jitter)
			default:
				return fmt.Errorf("unknown query type %q, want resolve or bounds", queryType)
			}

			printResult(cmd.OutOrStdout(), result, workers)
			return nil
		},
	}

	cmd.Flags().StringVarP(&queryType, "type", "t", "resolve", "query type: resolve, bounds")
	cmd.Flags().IntVarP(&numQueries, "queries", "n", 10000, "number of queries to run")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of concurrent workers")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&jitter, "jitter", 1.5, "max offset in degrees applied to catalogued venues")
	return cmd
}

// runWorkers feeds numQueries jobs to a worker pool and times each one.
// query reports whether the call was a hit.
func runWorkers(queryType string, numQueries, workers int, seed int64, query func(r *rand.Rand) bool) BenchmarkResult {
	var (
		hits        atomic.Int64
		minDuration = time.Hour
		maxDuration time.Duration
		mu          sync.Mutex
	)

	startTime := time.Now()

	queryCh := make(chan int, numQueries)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerSeed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(workerSeed))

			for range queryCh {
				queryStart := time.Now()
				hit := query(r)
				queryDuration := time.Since(queryStart)

				if hit {
					hits.Add(1)
				}
				mu.Lock()
				if queryDuration < minDuration {
					minDuration = queryDuration
				}
				if queryDuration > maxDuration {
					maxDuration = queryDuration
				}
				mu.Unlock()
			}
		}(seed + int64(w))
	}

	for i := 0; i < numQueries; i++ {
		queryCh <- i
	}
	close(queryCh)
	wg.Wait()

	totalDuration := time.Since(startTime)
	return BenchmarkResult{
		QueryType:     queryType,
		TotalQueries:  numQueries,
		TotalDuration: totalDuration,
		AvgDuration:   totalDuration / time.Duration(numQueries),
		QueriesPerSec: float64(numQueries) / totalDuration.Seconds(),
		MinDuration:   minDuration,
		MaxDuration:   maxDuration,
		Hits:          hits.Load(),
	}
}

func nearVenue(r *rand.Rand, venues []*models.CatalogEntry, jitter float64) models.GeoPoint {
	v := venues[r.Intn(len(venues))].Location
	return models.GeoPoint{
		Lon: v.Lon + (r.Float64()*2-1)*jitter,
		Lat: v.Lat + (r.Float64()*2-1)*jitter,
	}
}

func benchmarkResolve(res *timezone.Resolver, venues []*models.CatalogEntry, numQueries, workers int, seed int64, jitter float64) BenchmarkResult {
	return runWorkers("resolve", numQueries, workers, seed, func(r *rand.Rand) bool {
		p := nearVenue(r, venues, jitter)
		f := &models.Fixture{
			Timezone: timezone.DefaultZone,
			Venue:    &models.Venue{Coordinates: []float64{p.Lon, p.Lat}},
		}
		return res.Resolve(f).IsValidated
	})
}

func benchmarkBounds(c *bounds.Calculator, opts bounds.Options, venues []*models.CatalogEntry, numQueries, workers int, seed int64, jitter float64) BenchmarkResult {
	return runWorkers("bounds", numQueries, workers, seed, func(r *rand.Rand) bool {
		points := make([]models.GeoPoint, 1+r.Intn(12))
		for i := range points {
			points[i] = nearVenue(r, venues, jitter)
		}
		_, cls := c.Frame(points, opts)
		return cls.Setting == bounds.Urban
	})
}

func printResult(w io.Writer, result BenchmarkResult, workers int) {
	fmt.Fprintln(w, "=== Benchmark Results ===")
	fmt.Fprintf(w, "Query Type: %s\n", result.QueryType)
	fmt.Fprintf(w, "Total Queries: %d\n", result.TotalQueries)
	fmt.Fprintf(w, "Total Duration: %v\n", result.TotalDuration)
	fmt.Fprintf(w, "Average Duration: %v\n", result.AvgDuration)
	fmt.Fprintf(w, "Queries/Second: %.2f\n", result.QueriesPerSec)
	fmt.Fprintf(w, "Min Duration: %v\n", result.MinDuration)
	fmt.Fprintf(w, "Max Duration: %v\n", result.MaxDuration)
	fmt.Fprintf(w, "Hits: %d (%.1f%%)\n", result.Hits, 100*float64(result.Hits)/float64(result.TotalQueries))
	fmt.Fprintf(w, "Workers Used: %d\n", workers)
	fmt.Fprintf(w, "CPU Cores: %d\n", runtime.NumCPU())
}
