package pet

import "math"

// ThermalState は3ノードモデルの未知温度。
type ThermalState struct {
	TCore float64 // 核心温度, degree C
	TSkin float64 // 皮膚温度, degree C
	TClo  float64 // 着衣表面温度, degree C
}

// Slice returns the state as [t_core, t_skin, t_clo].
func (s ThermalState) Slice() []float64 {
	return []float64{s.TCore, s.TSkin, s.TClo}
}

func thermalStateFromSlice(x []float64) ThermalState {
	return ThermalState{TCore: x[0], TSkin: x[1], TClo: x[2]}
}

// 熱収支の評価モード
type Mode int

// 熱収支の評価モード
const (
	ModeActual    Mode = iota // 実環境（相対湿度から水蒸気圧を求める）
	ModeReference             // PET 基準環境（水蒸気圧 12 hPa 固定）
)

// HeatFluxes は熱収支の各項。単位は特記なき限り W/m2、損失が負。
type HeatFluxes struct {
	H          float64 // 代謝による内部発熱（外部仕事控除後）
	CRes       float64 // 呼吸による顕熱
	QRes       float64 // 呼吸による潜熱
	RBare      float64 // 裸体部の放射
	RClo       float64 // 着衣部の放射
	CBare      float64 // 裸体部の対流
	CClo       float64 // 着衣部の対流
	EDiff      float64 // 皮膚からの拡散蒸発
	ESw        float64 // 発汗蒸発
	Wettedness float64 // ぬれ率, -
	Hc         float64 // 対流熱伝達率, W/(m2 K)
	Htcl       float64 // 着衣の熱コンダクタンス, W/(m2 K)
	MBlood     float64 // 血流量, L/(m2 h)
	TBody      float64 // 核心・皮膚の加重平均温度, degree C

	Residuals [3]float64 // 核心・皮膚・着衣の各ノードの熱収支
	Net       float64    // 全身の熱収支
}

// Respiration returns the total respiratory heat exchange.
func (f HeatFluxes) Respiration() float64 { return f.CRes + f.QRes }

// Radiation returns the total radiative exchange.
func (f HeatFluxes) Radiation() float64 { return f.RBare + f.RClo }

// Convection returns the total convective exchange.
func (f HeatFluxes) Convection() float64 { return f.CBare + f.CClo }

// Evaporation returns the total evaporative exchange (negative for a loss).
func (f HeatFluxes) Evaporation() float64 { return -(f.EDiff + f.ESw) }

/*
3ノードモデルの熱収支を計算する。
Calculate every term of the three-node heat balance.

	Args:
		state: 核心温度・皮膚温度・着衣表面温度
		env: 環境条件
		p: 被験者
		mode: ModeActual なら相対湿度から水蒸気圧を求め、ModeReference なら 12 hPa に固定する

	Returns:
		熱収支の各項

	Notes:
		入力の検証は行わない。体重・身長が非正の場合などは NaN / Inf がそのまま返る。
*/
func Balance(state ThermalState, env Environment, p Person, mode Mode) HeatFluxes {
	var f HeatFluxes

	tCore, tSkin, tClo := state.TCore, state.TSkin, state.TClo

	// DuBois 式による体表面積, m2
	aD := aDubois(p.Weight, p.Height)

	// 代謝量, W/m2
	he := (env.Met + p.basalMetabolism()) / aD
	f.H = he * (1.0 - env.Wme)

	// 着衣による表面積の増加率
	fcl := 1 + 0.31*env.Clo
	// 着衣部の面積率
	fACl := (173.51*env.Clo - 2.36 - 100.76*env.Clo*env.Clo + 19.28*math.Pow(env.Clo, 3.0)) / 100
	// 着衣部の表面積, m2
	aClo := aD*fACl + aD*(fcl-1.0)

	// 有効放射面積率
	fEff := 0.725
	if p.Position == PositionStanding {
		fEff = 0.696
	}
	aREff := aD * fEff

	// 空気の水蒸気圧, hPa
	var vpa float64
	if mode == ModeActual {
		vpa = VaporPressure(env.Rh, env.Tdb)
	} else {
		vpa = RefVaporPressure
	}

	// 対流熱伝達率, W/(m2 K)
	hc := convectiveCoefficient(env.V, p.Position, env.PAtm)
	f.Hc = hc

	// 呼吸による熱損失
	tExp := 0.47*env.Tdb + 21.0
	dVentPulm := he * 1.44e-6
	f.CRes = 1010 * (env.Tdb - tExp) * dVentPulm
	vpExp := PSat(tExp) / 100
	f.QRes = 0.623 * hVap / env.PAtm * (vpa - vpExp) * dVentPulm

	vaso := Vasomotricity(tCore, tSkin)
	f.MBlood = vaso.MBlood
	f.TBody = vaso.Alpha*tSkin + (1-vaso.Alpha)*tCore

	// 着衣の熱抵抗, m2K/W
	rCl := env.Clo / 6.45
	if fACl > 1.0 {
		fACl = 1.0
	}
	y := clothingShapeFactor(env.Clo, p.Height)

	// 着衣の外径・内径（6.28 = 2 pi）
	r2 := aD * (fcl - 1.0 + fACl) / (6.28 * p.Height * y)
	r1 := fACl * aD / (6.28 * p.Height * y)
	di := r2 - r1
	f.Htcl = 6.28 * p.Height * y * di / (rCl * math.Log(r2/r1) * aClo)

	// 発汗蒸発, W/m2（g/(m2 h) を W/m2 に換算）
	esw := hVap / 1000 * SweatRate(f.TBody) / 3600

	// 皮膚温度における飽和水蒸気圧, hPa
	pVSk := PSat(tSkin) / 100

	heDiff := hc * lewisRatio
	fecl := 1 / (1 + 0.92*hc*rCl)
	eMax := heDiff * fecl * (pVSk - vpa)
	if eMax == 0 {
		eMax = 0.001
	}
	w := esw / eMax
	if w > 1 {
		w = 1
		delta := esw - eMax
		if delta < 0 {
			esw = eMax
		}
	}
	if esw < 0 {
		esw = 0
	}
	f.ESw = esw
	f.Wettedness = w

	// Woodcock の方法による着衣の透湿抵抗
	rEcl := (1/(fcl*hc) + rCl) / (lewisRatio * woodcockRatio)
	f.EDiff = (1 - w) * (pVSk - vpa) / rEcl
	evap := f.Evaporation()

	// 放射
	trK4 := math.Pow(env.Tr+cToK, 4.0)
	f.RBare = aREff * (1.0 - fACl) * eSkin * sbc * (trK4 - math.Pow(tSkin+cToK, 4.0)) / aD
	f.RClo = fEff * aClo * eClo * sbc * (trK4 - math.Pow(tClo+cToK, 4.0)) / aD

	// 対流
	f.CBare = hc * (env.Tdb - tSkin) * aD * (1.0 - fACl) / aD
	f.CClo = hc * (env.Tdb - tClo) * aClo / aD

	// 核心と皮膚の間の熱コンダクタンス, W/(m2 K)
	kCs := vaso.MBlood/3600*cb + 5.28

	f.Residuals = [3]float64{
		f.H + f.Respiration() - kCs*(tCore-tSkin),
		f.RBare + f.CBare + evap + kCs*(tCore-tSkin) - f.Htcl*(tSkin-tClo),
		f.CClo + f.RClo + f.Htcl*(tSkin-tClo),
	}
	f.Net = f.H + f.Respiration() + f.Radiation() + f.Convection() + evap

	return f
}

/*
実環境の3ノードの熱収支残差を計算する。

	Returns:
		[核心, 皮膚, 着衣] の熱収支, W/m2。解では全て 0 になる。
*/
func ResidualVector(state ThermalState, env Environment, p Person) [3]float64 {
	return Balance(state, env, p, ModeActual).Residuals
}

/*
基準環境における全身の熱収支を計算する。

	Args:
		state: 実環境で求めた核心温度・皮膚温度・着衣表面温度
		tx: 基準環境の空気温度（＝平均放射温度）の候補, degree C
		actual: 実環境（大気圧と外部仕事効率を引き継ぐ）
		p: 被験者

	Returns:
		全身の熱収支, W/m2
*/
func ScalarBalance(state ThermalState, tx float64, actual Environment, p Person) float64 {
	return Balance(state, ReferenceEnvironment(tx, actual), p, ModeReference).Net
}

/*
対流熱伝達率を計算する。

	Args:
		v: 風速, m/s
		position: 姿勢
		pAtm: 大気圧, hPa

	Returns:
		大気圧補正後の対流熱伝達率, W/(m2 K)
*/
func convectiveCoefficient(v float64, position Position, pAtm float64) float64 {
	var hc float64
	switch position {
	case PositionStanding:
		hc = 2.26 + 7.42*math.Pow(v, 0.67)
	case PositionStandingForcedConvection:
		hc = 8.6 * math.Pow(v, 0.513)
	default:
		hc = 2.67 + 6.5*math.Pow(v, 0.67)
	}

	pRatio := pAtm / pAtmStd
	hc = math.Max(3.0*math.Pow(pRatio, 0.53), hc)

	return hc * math.Pow(pRatio, 0.55)
}

/*
着衣の形状係数を求める。

	Args:
		clo: 着衣量, clo
		height: 身長, m

	Returns:
		着衣に覆われる身長方向の割合, -
*/
func clothingShapeFactor(clo, height float64) float64 {
	switch {
	case clo >= 2.0:
		return 1.0
	case clo > 0.6:
		return (height - 0.2) / height
	case clo > 0.3:
		return 0.5
	case clo > 0.0:
		return 0.1
	}
	return 0
}
