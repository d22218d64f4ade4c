package pet

import (
	"fmt"
	"math"
)

/*
PMVを計算する。
Calculate the PMV of the occupant.

	人体周りの熱伝達率を着衣温度との収束計算をした上でPMVを計算する。

	Args:
		env: 環境条件（代謝量は W/m2）
		s: 収束計算の設定

	Returns:
		PMV
*/
func Pmv(env Environment, s SolverSettings) (float64, error) {
	// 代謝量, W/m2
	m := env.Met

	// 水蒸気圧, Pa
	pa := VaporPressure(env.Rh, env.Tdb) * 100

	ht, err := solveHeatTransfer(env, s)
	if err != nil {
		return 0, err
	}

	// 作用温度, degree C
	thetaOt := operativeTemperature(ht.hR, env.Tr, ht.hC, env.Tdb)

	return pmvFromOperativeTemperature(env.Tdb, pa, ht.hC+ht.hR, thetaOt, ht.iCl, ht.fCl, m), nil
}

/*
目標のPMVとなる作用温度を計算する。
Calculate the operative temperature which gives the target PMV.

	Args:
		target: 目標PMV
		env: 環境条件（代謝量は W/m2）
		s: 収束計算の設定

	Returns:
		目標作用温度, degree C

	Notes:
		人体周りの熱伝達率は env の条件で収束計算したものを使い、
		呼吸に伴う顕熱損失の空気温度を作用温度で置き換えて陽に解く。
		tdb と tr が等しければ Pmv の逆関数になる。
*/
func OperativeTemperatureForPmv(target float64, env Environment, s SolverSettings) (float64, error) {
	m := env.Met
	pa := VaporPressure(env.Rh, env.Tdb) * 100

	ht, err := solveHeatTransfer(env, s)
	if err != nil {
		return 0, err
	}

	return targetOperativeTemperature(pa, ht.hC+ht.hR, target, ht.iCl, ht.fCl, m), nil
}

// PMV 計算での人体周りの熱伝達
type heatTransfer struct {
	hC  float64 // 対流熱伝達率, W/m2K
	hR  float64 // 放射熱伝達率, W/m2K
	iCl float64 // 着衣抵抗, m2K/W
	fCl float64 // 着衣面積率
}

// 人体周りの熱伝達率を着衣温度との収束計算で求める。
func solveHeatTransfer(env Environment, s SolverSettings) (heatTransfer, error) {
	iCl := cloToICl(env.Clo)
	fCl := clothingAreaFactor(iCl)

	f := func(t float64) float64 {
		hc := pmvConvectiveCoefficient(env.Tdb, t, env.V)
		hr := pmvRadiativeCoefficient(t, env.Tr)
		thetaOt := operativeTemperature(hr, env.Tr, hc, env.Tdb)
		return clothingTemperature(thetaOt, env.Met, iCl, fCl, hr, hc) - t
	}

	thetaCl, _, err := findRoot(f, 0.5*(env.Tdb+env.Tr), s)
	if err != nil {
		return heatTransfer{}, fmt.Errorf("pmv clothing temperature: %w", err)
	}

	return heatTransfer{
		hC:  pmvConvectiveCoefficient(env.Tdb, thetaCl, env.V),
		hR:  pmvRadiativeCoefficient(thetaCl, env.Tr),
		iCl: iCl,
		fCl: fCl,
	}, nil
}

/*
PPDを計算する。

	Args:
		pmv: PMV

	Returns:
		PPD, %
*/
func Ppd(pmv float64) float64 {
	pmv2 := pmv * pmv
	pmv4 := pmv2 * pmv2
	return 100.0 - 95.0*math.Exp(-0.03353*pmv4-0.2179*pmv2)
}

/*
Args:

	theta_r: 空気温度, degree C
	p_a: 水蒸気圧, Pa
	h_hum: 人体周りの総合熱伝達率, W/m2K
	theta_ot: 作用温度, degree C
	i_cl: 着衣抵抗, m2K/W
	f_cl: 着衣面積率
	m: 代謝量, W/m2
*/
func pmvFromOperativeTemperature(thetaR, pA, hHum, thetaOt, iCl, fCl, m float64) float64 {
	return (0.303*math.Exp(-0.036*m) + 0.028) * (m - // 活動量, W/m2
		3.05e-3*(5733.0-6.99*m-pA) - // 皮膚からの潜熱損失, W/m2
		math.Max(0.42*(m-58.15), 0.0) - // 発汗熱損失, W/m2
		1.7e-5*m*(5867.0-pA) - // 呼吸に伴う潜熱損失, W/m2
		0.0014*m*(34.0-thetaR) - // 呼吸に伴う顕熱損失, W/m2
		fCl*hHum*(35.7-0.028*m-thetaOt)/(1+iCl*fCl*hHum)) // 着衣からの熱損失
}

/*
Args:

	p_a: 水蒸気圧, Pa
	h_hum: 人体周りの総合熱伝達率, W/m2K
	pmv_target: 目標PMV
	i_cl: 着衣抵抗, m2K/W
	f_cl: 着衣面積率
	m: 代謝量, W/m2
*/
func targetOperativeTemperature(pA, hHum, pmvTarget, iCl, fCl, m float64) float64 {
	k := fCl * hHum / (1 + iCl*fCl*hHum)
	return (pmvTarget/(0.303*math.Exp(-0.036*m)+0.028) - m +
		3.05e-3*(5733.0-6.99*m-pA) +
		math.Max(0.42*(m-58.15), 0.0) +
		1.7e-5*m*(5867.0-pA) +
		0.0014*m*34.0 +
		k*(35.7-0.028*m)) /
		(0.0014*m + k)
}

// 作用温度, degree C
func operativeTemperature(hR, thetaMrt, hC, thetaR float64) float64 {
	return (hR*thetaMrt + hC*thetaR) / (hR + hC)
}

// 人体周りの対流熱伝達率, W/m2K
func pmvConvectiveCoefficient(thetaR, thetaCl, v float64) float64 {
	return math.Max(12.1*math.Sqrt(v), 2.38*math.Pow(math.Abs(thetaCl-thetaR), 0.25))
}

// 人体周りの放射熱伝達率, W/m2K
func pmvRadiativeCoefficient(thetaCl, thetaMrt float64) float64 {
	tCl := thetaCl + 273.0
	tMrt := thetaMrt + 273.0

	tCl2 := tCl * tCl
	tMrt2 := tMrt * tMrt

	return 3.96e-8 * (tCl2*tCl + tCl2*tMrt + tCl*tMrt2 + tMrt2*tMrt)
}

// 着衣温度, degree C
func clothingTemperature(thetaOt, m, iCl, fCl, hR, hC float64) float64 {
	return (35.7-0.028*m-thetaOt)/(1+iCl*fCl*(hR+hC)) + thetaOt
}

// 着衣面積率
func clothingAreaFactor(iCl float64) float64 {
	if iCl <= 0.078 {
		return 1.00 + 1.290*iCl
	}
	return 1.05 + 0.645*iCl
}

// 1 clo = 0.155 m2K/W
func cloToICl(clo float64) float64 {
	return clo * 0.155
}
