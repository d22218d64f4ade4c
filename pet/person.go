package pet

import (
	"fmt"
	"math"
)

// 性別
type Sex int

// 性別
const (
	SexMale   Sex = iota + 1 // 男性
	SexFemale                // 女性
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}
	return fmt.Sprintf("Sex(%d)", int(s))
}

func SexFromString(s string) (Sex, error) {
	sex, ok := map[string]Sex{
		"male":   SexMale,
		"female": SexFemale,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: sex %q", ErrInvalidArgument, s)
	}
	return sex, nil
}

//---------------------------------------------------------------------------------------------------//

// 姿勢
type Position int

// 姿勢
const (
	PositionSitting                  Position = iota + 1 // 座位
	PositionStanding                                     // 立位
	PositionStandingForcedConvection                     // 立位（強制対流）
)

func (p Position) String() string {
	switch p {
	case PositionSitting:
		return "sitting"
	case PositionStanding:
		return "standing"
	case PositionStandingForcedConvection:
		return "standing_forced_convection"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func PositionFromString(s string) (Position, error) {
	p, ok := map[string]Position{
		"sitting":                    PositionSitting,
		"standing":                   PositionStanding,
		"standing_forced_convection": PositionStandingForcedConvection,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: position %q", ErrInvalidArgument, s)
	}
	return p, nil
}

//---------------------------------------------------------------------------------------------------//

// Person は被験者の属性。
type Person struct {
	Age      float64  // 年齢, year
	Sex      Sex      // 性別
	Weight   float64  // 体重, kg
	Height   float64  // 身長, m
	Position Position // 姿勢
}

// DefaultPerson returns the standard subject: 23 years, male, 75 kg, 1.8 m, sitting.
func DefaultPerson() Person {
	return Person{
		Age:      23,
		Sex:      SexMale,
		Weight:   75,
		Height:   1.8,
		Position: PositionSitting,
	}
}

/*
性別・年齢・体格による基礎代謝量の補正を計算する。

	Returns:
		基礎代謝量, W
*/
func (p Person) basalMetabolism() float64 {
	w075 := math.Pow(p.Weight, 0.75)
	ponderal := p.Height * 100.0 / math.Pow(p.Weight, 1.0/3.0)

	if p.Sex == SexMale {
		return 3.45 * w075 * (1.0 + 0.004*(30.0-p.Age) + 0.01*(ponderal-43.4))
	}
	return 3.19 * w075 * (1.0 + 0.004*(30.0-p.Age) + 0.018*(ponderal-42.1))
}
