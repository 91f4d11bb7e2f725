package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		R = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		R = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	R = NewVector(n, ConstArray(n, val))
	return
}

func ConstArray(n int, val float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = val
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// DataP exposes the backing slice, used to feed transforms without a copy.
func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	R = NewVector(v.Len())
	copy(R.DataP(), v.DataP())
	return
}

func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	v.V.ScaleVec(a, v.V)
	return v
}

func (v Vector) AddScalar(a float64) Vector { // Changes receiver
	d := v.DataP()
	for i := range d {
		d[i] += a
	}
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	v.V.AddVec(v.V, a.V)
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) ElMul(a Vector) Vector { // Changes receiver
	v.V.MulElemVec(v.V, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	d := v.DataP()
	for i, val := range d {
		d[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	d := v.DataP()
	min = d[0]
	for _, val := range d {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	d := v.DataP()
	max = d[0]
	for _, val := range d {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	for _, val := range v.DataP() {
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}

// IsFinite reports whether every element is a finite number. A false return
// on a fixed-step run signals divergence under an unstable dt.
func (v Vector) IsFinite() bool {
	for _, val := range v.DataP() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
