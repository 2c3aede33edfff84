package venue

type City string

const (
	CityPune      City = "Pune"
	CityBangalore City = "Bangalore"
	CityMumbai    City = "Mumbai"
)

func (c City) String() string {
	return string(c)
}

func (c City) IsValid() bool {
	switch c {
	case CityPune, CityBangalore, CityMumbai:
		return true
	default:
		return false
	}
}

func AllCities() []City {
	return []City{CityPune, CityBangalore, CityMumbai}
}

type Type string

const (
	TypeBanquetHall Type = "Banquet Hall"
	TypeLounge      Type = "Lounge"
	TypeResort      Type = "Resort"
	TypePartyLawn   Type = "Party Lawn"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBanquetHall, TypeLounge, TypeResort, TypePartyLawn:
		return true
	default:
		return false
	}
}

func AllTypes() []Type {
	return []Type{TypeBanquetHall, TypeLounge, TypeResort, TypePartyLawn}
}
