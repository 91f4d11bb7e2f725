package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title      string  `yaml:"Title"`
	Model      string  `yaml:"Model"`      // governing-equation selector
	Integrator string  `yaml:"Integrator"` // empty selects the equation default
	N          int     `yaml:"N"`
	XMax       float64 `yaml:"XMax"`
	K          float64 `yaml:"K"`
	Mass       float64 `yaml:"Mass"`
	Alpha      float64 `yaml:"Alpha"`
	Epsilon    float64 `yaml:"Epsilon"`
	Dt         float64 `yaml:"Dt"`
	NSteps     int     `yaml:"NSteps"`
	FinalTime  float64 `yaml:"FinalTime"`
	Stride     int     `yaml:"Stride"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate fails fast before any stepping begins; nothing is silently
// defaulted. The equation and integrator selectors are validated where they
// are dispatched, since this package sits below the model packages.
func (ip *InputParameters1D) Validate() error {
	if ip.Model == "" {
		return fmt.Errorf("InputParameters: no governing-equation selector given")
	}
	if ip.N < 3 {
		return fmt.Errorf("InputParameters: invalid grid size N = %d, need at least 3", ip.N)
	}
	if ip.Dt <= 0 {
		return fmt.Errorf("InputParameters: time step must be positive, got %v", ip.Dt)
	}
	if ip.NSteps <= 0 && ip.FinalTime <= 0 {
		return fmt.Errorf("InputParameters: either NSteps or FinalTime must be positive")
	}
	if ip.Stride < 1 {
		return fmt.Errorf("InputParameters: recording stride must be at least 1, got %d", ip.Stride)
	}
	return nil
}

// Steps resolves the step count from NSteps or FinalTime/Dt.
func (ip *InputParameters1D) Steps() int {
	if ip.NSteps > 0 {
		return ip.NSteps
	}
	return int(ip.FinalTime / ip.Dt)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Model\n", ip.Model)
	fmt.Printf("[%d]\t\t\t= N\n", ip.N)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("[%d]\t\t\t= NSteps\n", ip.Steps())
	fmt.Printf("[%d]\t\t\t= Stride\n", ip.Stride)
}
