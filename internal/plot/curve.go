package plot

import (
	"fmt"

	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Curve is one evaluation of base^x over an interval.
type Curve struct {
	Base     float64
	Interval Interval
	Xs       []float64
	Ys       []float64
	Zs       []float64
	Bound    float64
}

func (c *Curve) Title() string {
	return fmt.Sprintf("y + zi = (%.2f)^x", c.Base)
}

func (c *Curve) Len() int {
	return len(c.Xs)
}

// Evaluator runs sample -> map -> bound, reusing the x samples of the last
// interval while only the base changes.
type Evaluator struct {
	logger l.Wrapper

	samples *cache.Cache
}

func NewEvaluator(logger l.Wrapper) *Evaluator {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Evaluator{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "Evaluator")),
		samples: cache.New(config.SampleCacheTTL, config.SampleCacheTTL),
	}
}

func (e *Evaluator) Evaluate(base float64, iv Interval) (*Curve, error) {
	xs, err := e.sample(iv)
	if err != nil {
		return nil, err
	}

	ys, zs := Map(base, xs)

	c := &Curve{
		Base:     base,
		Interval: iv,
		Xs:       xs,
		Ys:       ys,
		Zs:       zs,
		Bound:    Bound(ys, zs),
	}

	e.logger.WithFields(l.StringField("base", cast.ToString(base)), l.StringField("interval", iv.String()),
		l.IntField("samples", len(xs)), l.StringField("bound", cast.ToString(c.Bound))).Debug("evaluated")

	return c, nil
}

func (e *Evaluator) cachedIntervals() int {
	return e.samples.ItemCount()
}

func (e *Evaluator) sample(iv Interval) ([]float64, error) {
	key := cast.ToString(iv.Lo) + ":" + cast.ToString(iv.Hi)

	if v, ok := e.samples.Get(key); ok {
		cached, _ := v.([]float64)

		return append([]float64(nil), cached...), nil
	}

	xs, err := Sample(iv)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.StringField("interval", iv.String())).Error("sample failed")

		return nil, err
	}

	// a new interval replaces the old one; dragging the range slider would
	// otherwise keep every intermediate interval alive
	e.samples.Flush()
	e.samples.SetDefault(key, append([]float64(nil), xs...))

	e.logger.WithFields(l.StringField("interval", iv.String()), l.IntField("cached", e.cachedIntervals())).Debug("sampled")

	return xs, nil
}
