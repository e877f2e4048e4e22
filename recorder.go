package main

import (
	"math"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/tobony/ht/supercritical"
	"gonum.org/v1/gonum/mat"
)

// NusseltRow is one (case, correlation) result.
type NusseltRow struct {
	Case   string  `csv:"case"`
	Method string  `csv:"method"`
	Re     float64 `csv:"re"`
	Pr     float64 `csv:"pr"`
	Nu     float64 `csv:"nu"`
	Error  string  `csv:"error"`
}

// SummaryRow is the spread of all selected correlations for one case.
type SummaryRow struct {
	Case    string  `csv:"case"`
	Mean    float64 `csv:"mean"`
	Std     float64 `csv:"std"`
	Min     float64 `csv:"min"`
	Max     float64 `csv:"max"`
	NOK     int     `csv:"n_ok"`
	NFailed int     `csv:"n_failed"`
}

// SweepRow is one point of a Reynolds sweep. A correlation whose sweep
// failed has a single row with NaN values and the error text.
type SweepRow struct {
	Method string  `csv:"method"`
	Re     float64 `csv:"re"`
	Nu     float64 `csv:"nu"`
	Error  string  `csv:"error"`
}

// Recorder collects results and writes them as CSV tables.
type Recorder struct {
	nusselt []*NusseltRow
	summary []*SummaryRow
	sweep   []*SweepRow
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// recordCase stores every result of one case and its summary.
func (r *Recorder) recordCase(row *CaseRow, cmp supercritical.Comparison) {
	for _, res := range cmp.Results {
		nr := &NusseltRow{
			Case:   row.Name,
			Method: res.Method,
			Re:     row.Re,
			Pr:     row.Pr,
			Nu:     res.Nu,
		}
		if res.Err != nil {
			nr.Error = res.Err.Error()
		}
		r.nusselt = append(r.nusselt, nr)
	}

	r.summary = append(r.summary, &SummaryRow{
		Case:    row.Name,
		Mean:    cmp.Mean,
		Std:     cmp.StdDev,
		Min:     cmp.Min,
		Max:     cmp.Max,
		NOK:     cmp.OK,
		NFailed: len(cmp.Results) - cmp.OK,
	})
}

// recordSweep stores the points of one correlation's sweep.
func (r *Recorder) recordSweep(method string, re, nu mat.Vector) {
	for i := 0; i < re.Len(); i++ {
		r.sweep = append(r.sweep, &SweepRow{Method: method, Re: re.AtVec(i), Nu: nu.AtVec(i)})
	}
}

// recordSweepFailure stores a correlation whose sweep could not be completed.
func (r *Recorder) recordSweepFailure(method string, err error) {
	r.sweep = append(r.sweep, &SweepRow{Method: method, Re: math.NaN(), Nu: math.NaN(), Error: err.Error()})
}

/*
計算結果を保存する。

	Args:
		outputDir: 出力フォルダ
	Returns:
		書き出したファイルのパス
*/
func (r *Recorder) save(outputDir string) ([]string, error) {
	var paths []string

	write := func(name string, rows interface{}) error {
		path := filepath.Join(outputDir, name)
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := gocsv.MarshalFile(rows, file); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}

	if len(r.nusselt) > 0 {
		if err := write("nusselt.csv", &r.nusselt); err != nil {
			return paths, err
		}
		if err := write("summary.csv", &r.summary); err != nil {
			return paths, err
		}
	}
	if len(r.sweep) > 0 {
		if err := write("sweep.csv", &r.sweep); err != nil {
			return paths, err
		}
	}

	return paths, nil
}
