package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var yamlInput = []byte(`
Title: KdV soliton
Model: kdv
N: 256
XMax: 6.283185307179586
Epsilon: 0
Dt: 5.0e-7
NSteps: 200000
Stride: 1000
`)

func TestParse(t *testing.T) {
	var ip InputParameters1D
	assert.NoError(t, ip.Parse(yamlInput))
	assert.Equal(t, "KdV soliton", ip.Title)
	assert.Equal(t, "kdv", ip.Model)
	assert.Equal(t, 256, ip.N)
	assert.Equal(t, 5.e-7, ip.Dt)
	assert.Equal(t, 200000, ip.NSteps)
	assert.NoError(t, ip.Validate())

	assert.Error(t, ip.Parse([]byte("N: [not an int]")))
}

func TestValidate(t *testing.T) {
	good := InputParameters1D{Model: "burgers", N: 64, Dt: 1.e-3, NSteps: 100, Stride: 1}
	assert.NoError(t, good.Validate())

	for _, bad := range []InputParameters1D{
		{N: 64, Dt: 1.e-3, NSteps: 100, Stride: 1},                   // no model
		{Model: "burgers", N: 2, Dt: 1.e-3, NSteps: 100, Stride: 1},  // grid too small
		{Model: "burgers", N: 64, Dt: 0, NSteps: 100, Stride: 1},     // no time step
		{Model: "burgers", N: 64, Dt: 1.e-3, Stride: 1},              // neither NSteps nor FinalTime
		{Model: "burgers", N: 64, Dt: 1.e-3, NSteps: 100, Stride: 0}, // bad stride
	} {
		assert.Error(t, bad.Validate(), "%+v", bad)
	}
}

func TestSteps(t *testing.T) {
	ip := InputParameters1D{NSteps: 500, FinalTime: 10, Dt: 1.e-2}
	assert.Equal(t, 500, ip.Steps()) // NSteps wins when both are given

	ip.NSteps = 0
	assert.Equal(t, 1000, ip.Steps())
}
