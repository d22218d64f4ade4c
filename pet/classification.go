package pet

// 温冷感の区分
type Perception int

// 温冷感の区分（Matzarakis & Mayer, 1996）
const (
	VeryCold Perception = iota
	Cold
	Cool
	SlightlyCool
	Comfortable
	SlightlyWarm
	Warm
	Hot
	VeryHot
)

func (p Perception) String() string {
	return [...]string{
		"very cold", "cold", "cool", "slightly cool", "comfortable",
		"slightly warm", "warm", "hot", "very hot",
	}[p]
}

// Stress returns the grade of physiological stress for the perception.
func (p Perception) Stress() string {
	return [...]string{
		"extreme cold stress", "strong cold stress", "moderate cold stress", "slight cold stress",
		"no thermal stress",
		"slight heat stress", "moderate heat stress", "strong heat stress", "extreme heat stress",
	}[p]
}

// 各区分の下限値, degree C
var perceptionLowerBounds = [...]float64{4, 8, 13, 18, 23, 29, 35, 41}

/*
PET から温冷感の区分を求める。

	Args:
		pet: PET, degree C

	Returns:
		温冷感の区分

	Notes:
		各区分は下限値を含む。
*/
func ClassifyPet(pet float64) Perception {
	p := VeryCold
	for _, lb := range perceptionLowerBounds {
		if pet < lb {
			break
		}
		p++
	}
	return p
}
