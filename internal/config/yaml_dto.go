// SPDX-License-Identifier: MIT

package config

// YAMLFile is the on-disk layout of a scenario file.
type YAMLFile struct {
	Workers   int            `yaml:"workers"`
	Places    *int32         `yaml:"places"`
	Record    string         `yaml:"record"`
	Defaults  YAMLScenario   `yaml:"defaults"`
	Scenarios []YAMLScenario `yaml:"scenarios"`
}

// YAMLScenario mirrors batch.Scenario. Pointer fields distinguish "unset"
// from zero so that defaults can fill them.
type YAMLScenario struct {
	Name   string     `yaml:"name"`
	Engine string     `yaml:"engine"`
	Model  *YAMLModel `yaml:"model"`

	Spot     *float64 `yaml:"spot"`
	Strike   *float64 `yaml:"strike"`
	Maturity *float64 `yaml:"maturity"`
	Rate     *float64 `yaml:"rate"`
	Dividend *float64 `yaml:"dividend"`
	Type     string   `yaml:"type"` // call or put

	Barrier *YAMLBarrier `yaml:"barrier"`
	Grid    *YAMLGrid    `yaml:"grid"`

	Terms *int     `yaml:"terms"`
	Tol   *float64 `yaml:"tol"`
}

// YAMLModel holds the parameters of every model kind; only those of Kind are read.
type YAMLModel struct {
	Kind string `yaml:"kind"`

	Sigma float64 `yaml:"sigma"`

	C float64 `yaml:"c"`
	G float64 `yaml:"g"`
	M float64 `yaml:"m"`
	Y float64 `yaml:"y"`

	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Delta float64 `yaml:"delta"`

	Lambda float64 `yaml:"lambda"`
	MuJ    float64 `yaml:"mu_j"`
	SigmaJ float64 `yaml:"sigma_j"`

	P    float64 `yaml:"p"`
	Eta1 float64 `yaml:"eta1"`
	Eta2 float64 `yaml:"eta2"`
}

type YAMLBarrier struct {
	Level      float64 `yaml:"level"`
	Rebate     float64 `yaml:"rebate"`
	Monitoring int     `yaml:"monitoring"`
	Direction  string  `yaml:"direction"` // down or up
}

// YAMLGrid selects the sizer: P/Pbar for the manual mode, otherwise the
// cumulant mode with L1 and either LogN or MaxDx.
type YAMLGrid struct {
	L1    float64 `yaml:"l1"`
	LogN  int     `yaml:"log_n"`
	MaxDx float64 `yaml:"max_dx"`

	P    *int `yaml:"p"`
	Pbar *int `yaml:"pbar"`

	Convolution string `yaml:"convolution"` // fft or dense
	Lenient     bool   `yaml:"lenient"`
}
