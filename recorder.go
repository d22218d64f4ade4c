package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"pet_calc/pet"
)

// resultFileName は一括計算の結果ファイル名。
const resultFileName = "pet_result.csv"

// ResultRow は結果ファイルの1行。
type ResultRow struct {
	ID               string  `csv:"id"`
	Pet              float64 `csv:"pet"`        // degree C
	Perception       string  `csv:"perception"` // 温冷感
	Stress           string  `csv:"stress"`     // 熱ストレス
	TCore            float64 `csv:"t_core"`     // 核心温度, degree C
	TSkin            float64 `csv:"t_skin"`     // 皮膚温度, degree C
	TClo             float64 `csv:"t_clo"`      // 着衣温度, degree C
	Wettedness       float64 `csv:"wettedness"` // 皮膚濡れ率, -
	Pmv              float64 `csv:"pmv"`
	Ppd              float64 `csv:"ppd"` // %
	Iterations       int     `csv:"iterations"`
	SearchIterations int     `csv:"search_iterations"`
	Error            string  `csv:"error"`
}

// Recorder は一括計算の結果を蓄積して保存する。
type Recorder struct {
	rows []*ResultRow
}

func NewRecorder(n int) *Recorder {
	return &Recorder{rows: make([]*ResultRow, 0, n)}
}

// 1件分の結果を記録する。失敗した条件は数値を NaN として error 列に理由を残す。
func (r *Recorder) recording(o pet.Outcome) {
	if o.Err != nil {
		nan := math.NaN()
		r.rows = append(r.rows, &ResultRow{
			ID:    o.ID,
			Pet:   nan,
			TCore: nan, TSkin: nan, TClo: nan,
			Wettedness: nan,
			Pmv:        nan,
			Ppd:        nan,
			Error:      o.Err.Error(),
		})
		return
	}

	res := o.Result
	class := pet.ClassifyPet(res.Pet)
	r.rows = append(r.rows, &ResultRow{
		ID:               o.ID,
		Pet:              res.Pet,
		Perception:       class.String(),
		Stress:           class.Stress(),
		TCore:            res.State.TCore,
		TSkin:            res.State.TSkin,
		TClo:             res.State.TClo,
		Wettedness:       res.Fluxes.Wettedness,
		Pmv:              o.Pmv,
		Ppd:              o.Ppd,
		Iterations:       res.Iterations,
		SearchIterations: res.SearchIterations,
	})
}

/*
結果を CSV ファイルに保存する。

	Args:
		output_data_dir: 出力フォルダへのパス

	Returns:
		保存したファイルのパス
*/
func (r *Recorder) save(outputDataDir string) (string, error) {
	if err := os.MkdirAll(outputDataDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outputDataDir, resultFileName)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&r.rows, file); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
