package sweep

import (
	"context"
	"io"
	"runtime"

	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/pricing"
	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"golang.org/x/sync/errgroup"
)

// ParallelPricer prices large matrices on a bounded pool of goroutines. Each
// worker writes only its own row of the output, so results keep the input order.
type ParallelPricer struct {
	Sweeper *Sweeper
	// Workers caps the pool size; zero means one worker per logical CPU.
	Workers int
	// Progress, when non-nil, receives a progress bar.
	Progress io.Writer
}

func defaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

func (pp *ParallelPricer) workers() int {
	if pp.Workers > 0 {
		return pp.Workers
	}
	return defaultWorkers()
}

func (pp *ParallelPricer) newBar(total int, name string) (*mpb.Progress, *mpb.Bar) {
	if pp.Progress == nil || total == 0 {
		return nil, nil
	}
	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(pp.Progress))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)
	return p, bar
}

// run evaluates fn for every index in [0, n) and stops early if ctx is done.
func (pp *ParallelPricer) run(ctx context.Context, n int, name string, fn func(i int)) error {
	progress, bar := pp.newBar(n, name)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pp.workers())
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	if progress != nil {
		if err != nil {
			bar.Abort(false)
		}
		progress.Wait()
	}
	return err
}

// PriceEuropean is the concurrent form of Sweeper.PriceEuropeanMatrix.
func (pp *ParallelPricer) PriceEuropean(ctx context.Context, m models.EuropeanMatrix, metric models.Metric) (models.ResultMatrix, error) {
	call, put := pp.Sweeper.europeanPair(metric)
	out := make(models.ResultMatrix, len(m))
	err := pp.run(ctx, len(m), "european "+metric.String(), func(i int) {
		out[i] = models.ResultRow{Call: call(m[i]), Put: put(m[i])}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PricePerpetual is the concurrent form of Sweeper.PricePerpetualMatrix.
func (pp *ParallelPricer) PricePerpetual(ctx context.Context, m models.PerpetualMatrix) (models.ResultMatrix, error) {
	out := make(models.ResultMatrix, len(m))
	err := pp.run(ctx, len(m), "perpetual price", func(i int) {
		out[i] = models.ResultRow{Call: pricing.PerpetualCallPrice(m[i]), Put: pricing.PerpetualPutPrice(m[i])}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
