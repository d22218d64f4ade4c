package pet

import (
	"fmt"
	"math"
)

// 体表面積の計算式
type BsaFormula string

// 体表面積の計算式
const (
	BsaDubois   BsaFormula = "dubois"
	BsaTakahira BsaFormula = "takahira"
	BsaFujimoto BsaFormula = "fujimoto"
	BsaKurazumi BsaFormula = "kurazumi"
)

func (f BsaFormula) String() string {
	return string(f)
}

// 係数, 体重の指数, 身長の指数
func (f BsaFormula) coefficients() (c, expW, expH float64, ok bool) {
	switch f {
	case BsaDubois:
		return 0.202, 0.425, 0.725, true
	case BsaTakahira:
		return 0.2042, 0.425, 0.725, true
	case BsaFujimoto:
		return 0.1882, 0.444, 0.663, true
	case BsaKurazumi:
		return 0.2440, 0.383, 0.693, true
	}
	return 0, 0, 0, false
}

func BsaFormulaFromString(s string) (BsaFormula, error) {
	f := BsaFormula(s)
	if _, _, _, ok := f.coefficients(); !ok {
		return "", fmt.Errorf("%w: body surface area formula %q does not exist", ErrInvalidArgument, s)
	}
	return f, nil
}

/*
体表面積を計算する。
Calculate the body surface area.

	Args:
		weight: 体重, kg
		height: 身長, m
		formula: 計算式 (dubois, takahira, fujimoto, kurazumi)

	Returns:
		体表面積, m2
*/
func BodySurfaceArea(weight, height float64, formula BsaFormula) (float64, error) {
	c, expW, expH, ok := formula.coefficients()
	if !ok {
		return 0, fmt.Errorf("%w: body surface area formula %q does not exist", ErrInvalidArgument, string(formula))
	}
	return c * math.Pow(weight, expW) * math.Pow(height, expH), nil
}

// DuBois 式の体表面積, m2
func aDubois(weight, height float64) float64 {
	return 0.202 * math.Pow(weight, 0.425) * math.Pow(height, 0.725)
}
