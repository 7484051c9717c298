package tensor

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/parallel"
)

var parallelCfg = parallel.DefaultConfig()

// SetParallel replaces the worker configuration used by Map and Zip.
// It is not safe to call while other goroutines use this package.
func SetParallel(cfg parallel.Config) {
	parallelCfg = cfg
}

// Map returns a new matrix with f applied to every element of src.
//
// Rows are processed independently and may be spread across goroutines.
func Map(src *mat.Dense, f func(v float64) float64) *mat.Dense {
	r, c := src.Dims()
	dst := mat.NewDense(r, c, nil)
	parallel.ForRange(r, func(start, end int) {
		for i := start; i < end; i++ {
			in := src.RawRowView(i)
			out := dst.RawRowView(i)
			for j, v := range in {
				out[j] = f(v)
			}
		}
	}, parallelCfg)
	return dst
}

// Zip returns a new matrix with f applied pairwise to a and b.
// Panics with a *ShapeError if the shapes differ.
func Zip(a, b *mat.Dense, f func(x, y float64) float64) *mat.Dense {
	MustExpect("zip", b, Of(a))
	r, c := a.Dims()
	dst := mat.NewDense(r, c, nil)
	parallel.ForRange(r, func(start, end int) {
		for i := start; i < end; i++ {
			ra, rb := a.RawRowView(i), b.RawRowView(i)
			out := dst.RawRowView(i)
			for j := range out {
				out[j] = f(ra[j], rb[j])
			}
		}
	}, parallelCfg)
	return dst
}

// AddBias adds b to every column of z in place.
func AddBias(z *mat.Dense, b *mat.VecDense) {
	r, _ := z.Dims()
	MustExpect("bias", b, Shape{Rows: r, Cols: 1})
	for i := 0; i < r; i++ {
		floats.AddConst(b.AtVec(i), z.RawRowView(i))
	}
}

// RowSums returns the sum of each row of m as a column vector.
func RowSums(m *mat.Dense) *mat.VecDense {
	r, _ := m.Dims()
	out := mat.NewVecDense(r, nil)
	parallel.For(r, func(i int) {
		out.SetVec(i, floats.Sum(m.RawRowView(i)))
	}, parallelCfg)
	return out
}

// MaskScale multiplies a by mask element-wise and divides by keep, in place.
//
// This is the inverted dropout step: kept units are scaled up so that the
// expected activation is unchanged.
func MaskScale(a, mask *mat.Dense, keep float64) {
	MustExpect("dropout mask", mask, Of(a))
	a.MulElem(a, mask)
	if keep != 1 {
		a.Scale(1/keep, a)
	}
}

// FrobeniusSq returns the squared Frobenius norm of m.
func FrobeniusSq(m *mat.Dense) float64 {
	r, _ := m.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		sum += floats.Dot(row, row)
	}
	return sum
}

// RandN returns an r×c matrix of N(0, 1) samples multiplied by scale.
func RandN(r, c int, scale float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	return mat.NewDense(r, c, data)
}

// Bernoulli returns an r×c 0/1 matrix where each entry is 1 iff a uniform
// sample in [0, 1) is below p.
func Bernoulli(r, c int, p float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		if rng.Float64() < p {
			data[i] = 1
		}
	}
	return mat.NewDense(r, c, data)
}

// SelectCols returns a new matrix built from the columns of m listed in idx.
func SelectCols(m *mat.Dense, idx []int) *mat.Dense {
	r, _ := m.Dims()
	dst := mat.NewDense(r, len(idx), nil)
	col := make([]float64, r)
	for k, j := range idx {
		mat.Col(col, j, m)
		dst.SetCol(k, col)
	}
	return dst
}
