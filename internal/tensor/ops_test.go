package tensor

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/parallel"
)

func TestMap(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, -2, 3, -4, 5, -6})

	out := Map(src, func(v float64) float64 { return v * 2 })

	want := mat.NewDense(2, 3, []float64{2, -4, 6, -8, 10, -12})
	assert.True(t, mat.Equal(want, out))
	assert.Equal(t, 1.0, src.At(0, 0), "source must not be modified")
}

func TestMap_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := RandN(300, 5, 1, rng)
	square := func(v float64) float64 { return v * v }

	SetParallel(parallel.Sequential())
	seq := Map(src, square)

	SetParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	defer SetParallel(parallel.DefaultConfig())
	par := Map(src, square)

	assert.True(t, mat.Equal(seq, par))
}

func TestZip(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 2, 3})
	b := mat.NewDense(1, 3, []float64{4, 5, 6})

	out := Zip(a, b, func(x, y float64) float64 { return x * y })

	assert.Equal(t, []float64{4, 10, 18}, out.RawRowView(0))
}

func TestZip_ShapeMismatchPanics(t *testing.T) {
	a := mat.NewDense(1, 3, nil)
	b := mat.NewDense(3, 1, nil)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}()
	Zip(a, b, func(x, y float64) float64 { return x + y })
}

func TestAddBias(t *testing.T) {
	z := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 1, 1})
	b := mat.NewVecDense(2, []float64{0.5, -1})

	AddBias(z, b)

	want := mat.NewDense(2, 3, []float64{0.5, 0.5, 0.5, 0, 0, 0})
	assert.True(t, mat.Equal(want, z))
}

func TestRowSums(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	sums := RowSums(m)

	assert.Equal(t, []float64{6, 15}, sums.RawVector().Data)
}

func TestMaskScale(t *testing.T) {
	a := mat.NewDense(1, 4, []float64{1, 2, 3, 4})
	mask := mat.NewDense(1, 4, []float64{1, 0, 1, 0})

	MaskScale(a, mask, 0.5)

	assert.Equal(t, []float64{2, 0, 6, 0}, a.RawRowView(0))
}

func TestFrobeniusSq(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.InDelta(t, 30.0, FrobeniusSq(m), 1e-12)
}

func TestBernoulli_KeepRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Bernoulli(100, 100, 0.8, rng)

	kept := mat.Sum(m)
	assert.InDelta(t, 8000, kept, 300)

	all := Bernoulli(10, 10, 1, rng)
	assert.Equal(t, 100.0, mat.Sum(all))
}

func TestSelectCols(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	out := SelectCols(m, []int{2, 0})

	want := mat.NewDense(2, 2, []float64{3, 1, 6, 4})
	assert.True(t, mat.Equal(want, out))
}

func TestExpect(t *testing.T) {
	m := mat.NewDense(2, 3, nil)

	require.NoError(t, Expect("ok", m, Shape{Rows: 2, Cols: 3}))

	err := Expect("weights", m, Shape{Rows: 3, Cols: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, se.Got)
	assert.Contains(t, err.Error(), "weights")
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{Rows: 1, Cols: 1}.Validate())
	assert.Error(t, Shape{Rows: 0, Cols: 1}.Validate())
	assert.Equal(t, "(2, 5)", Shape{Rows: 2, Cols: 5}.String())
}
