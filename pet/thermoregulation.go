package pet

// VasomotorState は血流量と核心・皮膚の重み付け係数。
type VasomotorState struct {
	MBlood float64 // 血流量, L/(m2 h)
	Alpha  float64 // 皮膚側の重み, -
}

/*
血管運動（血流量）を計算する。
Calculate the vasomotricity (blood flow) from the core and skin temperatures.

	Args:
		t_core: 核心温度, degree C
		t_skin: 皮膚温度, degree C

	Returns:
		血流量, L/(m2 h) と核心・皮膚の重み付け係数 alpha

	Notes:
		血流量の基準値は 6.3 L/(m2 h)、上限は 90 L/(m2 h)。
*/
func Vasomotricity(tCore, tSkin float64) VasomotorState {
	sigSkin := tSkinSet - tSkin
	sigCore := tCore - tCoreSet
	if sigCore < 0 {
		sigCore = 0.0
	}
	if sigSkin < 0 {
		sigSkin = 0.0
	}

	mBlood := (6.3 + 75.0*sigCore) / (1.0 + 0.5*sigSkin)
	if mBlood > 90 {
		mBlood = 90.0
	}

	return VasomotorState{
		MBlood: mBlood,
		Alpha:  0.0417737 + 0.7451833/(mBlood+0.585417),
	}
}

/*
発汗量を計算する。
Calculate the sweat rate from the weighted body temperature.

	Args:
		t_body: 核心温度と皮膚温度の加重平均, degree C

	Returns:
		発汗量, g/(m2 h)

	Notes:
		上限は 500 g/(m2 h)。
*/
func SweatRate(tBody float64) float64 {
	// 体温の設定値, degree C
	tBodySet := 0.1*tSkinSet + 0.9*tCoreSet

	sigBody := tBody - tBodySet
	if sigBody < 0 {
		sigBody = 0.0
	}

	mRsw := 304.94e-3 * sigBody
	if mRsw > 500 {
		mRsw = 500
	}
	return mRsw
}
