package pet

// Environment は熱収支を評価する環境条件。
type Environment struct {
	Tdb  float64 // 空気温度, degree C
	Tr   float64 // 平均放射温度, degree C
	V    float64 // 風速, m/s
	Rh   float64 // 相対湿度, %
	PAtm float64 // 大気圧, hPa
	Met  float64 // 代謝量, W/m2
	Clo  float64 // 着衣量, clo
	Wme  float64 // 外部仕事効率, -
}

// NewEnvironment returns an environment at standard pressure with no external work.
func NewEnvironment(tdb, tr, v, rh, met, clo float64) Environment {
	return Environment{
		Tdb:  tdb,
		Tr:   tr,
		V:    v,
		Rh:   rh,
		PAtm: pAtmStd,
		Met:  met,
		Clo:  clo,
		Wme:  0,
	}
}

/*
PET の基準環境を作る。
Build the reference environment used to define PET.

	Args:
		tx: 基準環境の空気温度（＝平均放射温度）, degree C
		actual: 実環境（大気圧と外部仕事効率を引き継ぐ）

	Notes:
		基準環境の水蒸気圧は 12 hPa に固定され、相対湿度からは求めない。
*/
func ReferenceEnvironment(tx float64, actual Environment) Environment {
	return Environment{
		Tdb:  tx,
		Tr:   tx,
		V:    RefAirSpeed,
		Rh:   RefRelativeHumidity,
		PAtm: actual.PAtm,
		Met:  RefMetabolicRate,
		Clo:  RefClo,
		Wme:  actual.Wme,
	}
}
