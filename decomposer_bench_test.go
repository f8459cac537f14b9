package decomposer

import (
	"os"
	"testing"
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchForecastRes *ForecastResults

func generateBenchSeries() *timedataset.TimeDataset {
	// hourly samples over four weeks with a daily cycle
	n := 28 * 24
	t := timedataset.GenerateT(n, time.Hour, time.Now)
	y := timedataset.GenerateConstY(n, 98.3).
		Add(timedataset.GenerateLineY(n, 0, 0.01)).
		Add(timedataset.GenerateWaveY(n, 10.5, 24, 2)).
		Add(timedataset.GenerateWaveY(n, 3.2, 8, 0)).
		Add(timedataset.GenerateNoise(n, 1.5, 5)).
		SetMissing(n/3, n/2, n*2/3)

	td, err := timedataset.NewWithPeriod(t, y, 24)
	if err != nil {
		panic(err)
	}
	return td
}

func BenchmarkTrainToModel(b *testing.B) {
	td := generateBenchSeries()

	var d *Decomposer
	var err error

	b.ResetTimer()
	for b.Loop() {
		d, err = New(nil)
		if err != nil {
			panic(err)
		}

		if err := d.Fit(td); err != nil {
			panic(err)
		}
	}

	m, err := d.Model()
	if err != nil {
		panic(err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("benchmark_model.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkDecomposeAutoPeriod(b *testing.B) {
	td, err := generateBenchSeries().WithPeriod(timedataset.PeriodAuto)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := Decompose(td, nil); err != nil {
			panic(err)
		}
	}
}

func BenchmarkForecastFromModel(b *testing.B) {
	bytes, err := os.ReadFile("benchmark_model.json")
	if err != nil {
		b.Skip("run BenchmarkTrainToModel first to generate benchmark_model.json")
	}

	var model Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		panic(err)
	}
	d, err := NewFromModel(model)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchForecastRes, err = d.Forecast(24)
		if err != nil {
			panic(err)
		}
	}
}
