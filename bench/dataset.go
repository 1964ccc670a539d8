package bench

import (
	"slices"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/table"
)

// Dataset is the input of one benchmark run.
type Dataset[T constraints.Unsigned] struct {
	// Values holds the table values in ascending order.
	Values []T
	// Queries holds the random queries, in generation order.
	Queries []T
	// Table is the flat tree built from Values.
	Table *table.Table[T]
}

// Generate draws cfg.Entries values and cfg.Queries queries uniformly over the
// full range of T, sorts the values and builds the flat table with cfg.Layout.
//
// The same Seed always yields the same Dataset.
func Generate[T constraints.Unsigned](cfg Config) (*Dataset[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	faker := gofakeit.New(cfg.Seed)

	values := randomValues[T](faker, cfg.Entries)
	slices.Sort(values)

	tbl, err := table.New(values, table.WithLayout(cfg.Layout))
	if err != nil {
		return nil, err
	}

	return &Dataset[T]{
		Values:  values,
		Queries: randomValues[T](faker, cfg.Queries),
		Table:   tbl,
	}, nil
}

// Weights returns every flat buffer value divided by the largest value.
// All weights are zero when every value is zero.
func (ds *Dataset[T]) Weights() []float64 {
	buf := ds.Table.Layout()
	weights := make([]float64, len(buf))

	maxValue := float64(ds.Values[len(ds.Values)-1])
	if maxValue == 0 {
		return weights
	}

	for i, v := range buf {
		weights[i] = float64(v) / maxValue
	}

	return weights
}

// randomValues truncates 64-bit draws to T, which keeps them uniform over the
// full range of T.
func randomValues[T constraints.Unsigned](faker *gofakeit.Faker, n int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(faker.Uint64())
	}

	return values
}
