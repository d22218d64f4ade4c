package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"pet_calc/pet"
)

// ConditionRow は一括計算の条件ファイルの1行。
// 空欄の個人属性・大気圧・外部仕事効率は既定値になる。
type ConditionRow struct {
	ID       string  `csv:"id"`
	Tdb      float64 `csv:"tdb"`      // 空気温度, degree C
	Tr       float64 `csv:"tr"`       // 平均放射温度, degree C
	V        float64 `csv:"v"`        // 風速, m/s
	Rh       float64 `csv:"rh"`       // 相対湿度, %
	Met      float64 `csv:"met"`      // 代謝量, met
	Clo      float64 `csv:"clo"`      // 着衣量, clo
	PAtm     string  `csv:"p_atm"`    // 大気圧, hPa
	Position string  `csv:"position"` // sitting, standing, standing_forced_convection
	Age      string  `csv:"age"`      // 年齢, year
	Sex      string  `csv:"sex"`      // male, female
	Weight   string  `csv:"weight"`   // 体重, kg
	Height   string  `csv:"height"`   // 身長, m
	Wme      string  `csv:"wme"`      // 外部仕事効率, -
}

/*
条件ファイルを読み込む。

	Args:
		file_path: 条件ファイルのパス

	Returns:
		計算条件
*/
func loadConditions(filePath string) ([]pet.Case, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("condition file %s does not exist", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readConditions(file)
}

func readConditions(r io.Reader) ([]pet.Case, error) {
	var rows []*ConditionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse conditions: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("condition file has no rows")
	}

	cases := make([]pet.Case, len(rows))
	for i, row := range rows {
		c, err := row.toCase()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if c.ID == "" {
			c.ID = strconv.Itoa(i + 1)
		}
		cases[i] = c
	}
	return cases, nil
}

func (row *ConditionRow) toCase() (pet.Case, error) {
	p := pet.DefaultPerson()
	env := pet.NewEnvironment(row.Tdb, row.Tr, row.V, row.Rh, row.Met*pet.MetFactor, row.Clo)

	var err error
	if env.PAtm, err = optionalFloat(row.PAtm, env.PAtm, "p_atm"); err != nil {
		return pet.Case{}, err
	}
	if env.Wme, err = optionalFloat(row.Wme, env.Wme, "wme"); err != nil {
		return pet.Case{}, err
	}
	if p.Age, err = optionalFloat(row.Age, p.Age, "age"); err != nil {
		return pet.Case{}, err
	}
	if p.Weight, err = optionalFloat(row.Weight, p.Weight, "weight"); err != nil {
		return pet.Case{}, err
	}
	if p.Height, err = optionalFloat(row.Height, p.Height, "height"); err != nil {
		return pet.Case{}, err
	}
	if row.Sex != "" {
		if p.Sex, err = pet.SexFromString(row.Sex); err != nil {
			return pet.Case{}, err
		}
	}
	if row.Position != "" {
		if p.Position, err = pet.PositionFromString(row.Position); err != nil {
			return pet.Case{}, err
		}
	}

	return pet.Case{ID: row.ID, Environment: env, Person: p}, nil
}

func optionalFloat(s string, def float64, column string) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return v, nil
}
