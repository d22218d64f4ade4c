package pet

import "math"

/*
飽和水蒸気圧を計算する。
Calculate the saturation vapor pressure of water.

	Args:
		tdb: 空気温度, degree C

	Returns:
		飽和水蒸気圧, Pa （小数第1位に丸める）

	Notes:
		Hyland-Wexler の式。0 degC 未満は氷面、0 degC 以上は水面の係数を使う。
*/
func PSat(tdb float64) float64 {
	// 絶対温度, K
	t := tdb + cToK

	const c1 = -5674.5359
	const c2 = 6.3925247
	const c3 = -0.9677843e-2
	const c4 = 0.62215701e-6
	const c5 = 0.20747825e-8
	const c6 = -0.9484024e-12
	const c7 = 4.1635019
	const c8 = -5800.2206
	const c9 = 1.3914993
	const c10 = -0.048640239
	const c11 = 0.41764768e-4
	const c12 = -0.14452093e-7
	const c13 = 6.5459673

	var pascals float64
	if t < cToK {
		pascals = math.Exp(c1/t + c2 + t*(c3+t*(c4+t*(c5+c6*t))) + c7*math.Log(t))
	} else {
		pascals = math.Exp(c8/t + c9 + t*(c10+t*(c11+t*c12)) + c13*math.Log(t))
	}

	return roundTenth(pascals)
}

// 小数第1位への丸め。端数 0.05 は偶数側に丸める。
func roundTenth(x float64) float64 {
	return math.RoundToEven(x*10.0) / 10.0
}

/*
相対湿度から水蒸気圧を計算する。

	Args:
		rh: 相対湿度, %
		tdb: 空気温度, degree C

	Returns:
		水蒸気圧, hPa
*/
func VaporPressure(rh, tdb float64) float64 {
	return rh / 100.0 * PSat(tdb) / 100.0
}

/*
水蒸気圧から相対湿度を計算する。

	Args:
		p_v: 水蒸気圧, hPa
		tdb: 空気温度, degree C

	Returns:
		相対湿度, %
*/
func RelativeHumidity(pv, tdb float64) float64 {
	return pv / (PSat(tdb) / 100.0) * 100.0
}
