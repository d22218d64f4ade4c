package pet

// 絶対温度への換算, K
const cToK = 273.15

// 皮膚の放射率
const eSkin = 0.99

// 着衣の放射率
const eClo = 0.95

// 水の蒸発潜熱, J/kg
const hVap = 2.42e6

// ステファンボルツマン定数, W/(m2 K4)
const sbc = 5.67e-8

// 血液の比熱, J/(kg K)
const cb = 3640.0

// ルイス比, K/hPa
const lewisRatio = 1.67

// 着衣の透湿指数（Woodcock）
const woodcockRatio = 0.38

// 核心温度・皮膚温度の設定値, degree C
const (
	tCoreSet = 36.6
	tSkinSet = 34.0
)

// 標準大気圧, hPa
const pAtmStd = 1013.25

// 1 met あたりの代謝量, W/m2
const MetFactor = 58.2

// 基準環境（PET を定義する室内環境）
const (
	RefAirSpeed         = 0.1  // m/s
	RefRelativeHumidity = 50.0 // %
	RefMetabolicRate    = 80.0 // W/m2
	RefClo              = 0.9  // clo
	RefVaporPressure    = 12.0 // hPa
)
