package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/tobony/ht/supercritical"
)

// CaseRow is one flow condition of a case file. Zero columns are treated as
// omitted; paired properties are used only when both members are given.
type CaseRow struct {
	Name     string  `csv:"name"`
	Re       float64 `csv:"re"`     // Reynolds number
	Pr       float64 `csv:"pr"`     // Prandtl number
	PrW      float64 `csv:"pr_w"`   // Prandtl number at the wall
	PrPc     float64 `csv:"pr_pc"`  // Prandtl number at the pseudocritical temperature
	RhoW     float64 `csv:"rho_w"`  // density at the wall, kg/m3
	RhoB     float64 `csv:"rho_b"`  // density in the bulk, kg/m3
	MuW      float64 `csv:"mu_w"`   // viscosity at the wall, Pa s
	MuB      float64 `csv:"mu_b"`   // viscosity in the bulk, Pa s
	CpAvg    float64 `csv:"cp_avg"` // average heat capacity between wall and bulk, J/kg/K
	CpB      float64 `csv:"cp_b"`   // heat capacity in the bulk, J/kg/K
	KW       float64 `csv:"k_w"`    // conductivity at the wall, W/m/K
	KB       float64 `csv:"k_b"`    // conductivity in the bulk, W/m/K
	TB       float64 `csv:"t_b"`    // bulk temperature, K
	TW       float64 `csv:"t_w"`    // wall temperature, K
	TPc      float64 `csv:"t_pc"`   // pseudocritical temperature, K
	H        float64 `csv:"h"`      // bulk enthalpy, J/kg
	G        float64 `csv:"g"`      // mass flux, kg/m2/s
	Q        float64 `csv:"q"`      // heat flux, W/m2
	D        float64 `csv:"d"`      // tube diameter, m
	X        float64 `csv:"x"`      // distance from the inlet, m
	Gr       float64 `csv:"gr"`     // Grashof number
	Downward bool    `csv:"downward"`
}

/*
ケースファイルを読み込む。

	Args:
		filePath: ケースファイルのパス
	Returns:
		流れ条件ごとの行。名前の無い行は "case-<n>" とする。
*/
func loadCases(filePath string) ([]*CaseRow, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("case file %s does not exist", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*CaseRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("case file %s has no rows", filePath)
	}

	for i, row := range rows {
		if row.Name == "" {
			row.Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return rows, nil
}

// options converts the given columns into correlation options.
func (c *CaseRow) options() []supercritical.Option {
	var opts []supercritical.Option

	if c.RhoW != 0 && c.RhoB != 0 {
		opts = append(opts, supercritical.WithDensities(c.RhoW, c.RhoB))
	}
	if c.MuW != 0 && c.MuB != 0 {
		opts = append(opts, supercritical.WithViscosities(c.MuW, c.MuB))
	}
	if c.CpAvg != 0 && c.CpB != 0 {
		opts = append(opts, supercritical.WithHeatCapacities(c.CpAvg, c.CpB))
	}
	if c.KW != 0 && c.KB != 0 {
		opts = append(opts, supercritical.WithConductivities(c.KW, c.KB))
	}
	if c.TB != 0 && c.TW != 0 && c.TPc != 0 {
		opts = append(opts, supercritical.WithTemperatures(c.TB, c.TW, c.TPc))
	}
	if c.PrW != 0 {
		opts = append(opts, supercritical.WithWallPrandtl(c.PrW))
	}
	if c.PrPc != 0 {
		opts = append(opts, supercritical.WithPseudocriticalPrandtl(c.PrPc))
	}
	if c.H != 0 {
		opts = append(opts, supercritical.WithEnthalpy(c.H))
	}
	if c.G != 0 {
		opts = append(opts, supercritical.WithMassFlux(c.G))
	}
	if c.Q != 0 {
		opts = append(opts, supercritical.WithHeatFlux(c.Q))
	}
	if c.D != 0 && c.X != 0 {
		opts = append(opts, supercritical.WithEntryLength(c.D, c.X))
	}
	if c.Gr != 0 {
		opts = append(opts, supercritical.WithGrashof(c.Gr))
	}
	if c.Downward {
		opts = append(opts, supercritical.WithDownwardFlow())
	}

	return opts
}
