package domain

import "fmt"

// City is one of the five fixed city codes content is scoped by.
type City string

const (
	CitySaintPetersburg City = "spb"
	CityMoscow          City = "msk"
	CityYekaterinburg   City = "ekb"
	CityNovosibirsk     City = "nsk"
	CityNizhnyNovgorod  City = "nn"
)

// DefaultCity is assigned to lazily created users until they pick one.
const DefaultCity = CityNizhnyNovgorod

var Cities = []City{
	CitySaintPetersburg,
	CityMoscow,
	CityYekaterinburg,
	CityNovosibirsk,
	CityNizhnyNovgorod,
}

func ParseCity(s string) (City, error) {
	for _, c := range Cities {
		if City(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unrecognised city [%s]", s)
}
