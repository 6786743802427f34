package sample

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Row is a single evaluated point of a curve.
type Row struct {
	Curve   string  `csv:"curve"`
	Weight  float64 `csv:"weight"`
	Value   float64 `csv:"value"`
	Wrapped float64 `csv:"wrapped"`
}

// Summary describes the values of a sampled curve.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64

	// MaxSlope is the largest absolute rate of change per unit weight. It is
	// exact at the sampled weights for bezier curves and a finite difference
	// for all other kinds.
	MaxSlope float64
}

type Sampler struct {
	logger *slog.Logger
}

func NewSampler(logger *slog.Logger) *Sampler {
	return &Sampler{logger: logger}
}

// Sample evaluates every curve at cfg.Samples weights evenly spaced in [0, 1].
// Rows are grouped by curve in configuration order.
func (s *Sampler) Sample(cfg *Config) []Row {
	weights := Weights(cfg.Samples)

	rows := make([]Row, 0, len(cfg.Curves)*len(weights))

	for idx := range cfg.Curves {
		curve := &cfg.Curves[idx]

		start := len(rows)

		for _, weight := range weights {
			value, wrapped := curve.At(weight)

			rows = append(rows, Row{
				Curve:   curve.Name,
				Weight:  weight,
				Value:   value,
				Wrapped: wrapped,
			})
		}

		summary := Summarize(curve, rows[start:])

		s.logger.Debug("Sampled curve",
			slog.String("name", curve.Name),
			slog.String("kind", string(curve.Kind)),
			slog.Int("precision", curve.Precision),
			slog.Float64("min", summary.Min),
			slog.Float64("max", summary.Max),
			slog.Float64("mean", summary.Mean),
			slog.Float64("maxSlope", summary.MaxSlope),
		)
	}

	s.logger.Info("Sampling finished",
		slog.Int("curves", len(cfg.Curves)),
		slog.Int("rows", len(rows)),
	)

	return rows
}

// Weights returns n weights evenly spaced in [0, 1], both ends included.
// n must be at least 2.
func Weights(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 1)
}

// Summarize computes statistics over the rows of a single curve. At least
// two rows are required.
func Summarize(curve *Curve, rows []Row) Summary {
	weights := make([]float64, len(rows))
	values := make([]float64, len(rows))

	for idx, row := range rows {
		weights[idx] = row.Weight
		values[idx] = row.Value
	}

	return Summary{
		Min:      floats.Min(values),
		Max:      floats.Max(values),
		Mean:     stat.Mean(values, nil),
		MaxSlope: maxSlope(curve, weights, values),
	}
}

func maxSlope(curve *Curve, weights, values []float64) float64 {
	var slopes []float64

	if _, ok := curve.Tangent(0); ok {
		slopes = make([]float64, len(weights))
		for idx, weight := range weights {
			slopes[idx], _ = curve.Tangent(weight)
		}
	} else {
		n := len(values) - 1

		slopes = floats.SubTo(make([]float64, n), values[1:], values[:n])
		steps := floats.SubTo(make([]float64, n), weights[1:], weights[:n])
		floats.Div(slopes, steps)
	}

	return floats.Norm(slopes, math.Inf(1))
}

// WriteCSV writes the rows including a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	return nil
}
