package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.CloneFrom(m.M)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	R.M.CloneFrom(m.M.T())
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nr, _  = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nr, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Sub(m.M, A.M)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	m.checkWritable()
	d := m.M.RawMatrix().Data
	for i := range d {
		d[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	m.checkWritable()
	d := m.M.RawMatrix().Data
	for i, val := range d {
		d[i] = f(val)
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.M.MulElem(m.M, A.M)
	return m
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.M.At(i, j)
	}
	return NewVector(nr, data)
}

func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	for j := 0; j < nc; j++ {
		data[j] = m.M.At(i, j)
	}
	return NewVector(nc, data)
}

func (m Matrix) Min() (min float64) {
	d := m.M.RawMatrix().Data
	min = d[0]
	for _, val := range d {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	d := m.M.RawMatrix().Data
	max = d[0]
	for _, val := range d {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt made to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
