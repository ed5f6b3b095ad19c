package animals

import (
	"time"

	"pet-boarding/internal/domain/money"
)

// SizeClass define el tamaño de la raza; determina la tarifa base diaria.
// @Enum small, medium, large
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

var baseRates = map[SizeClass]money.Money{
	SizeSmall:  1500,
	SizeMedium: 2000,
	SizeLarge:  3000,
}

// BaseRate devuelve la tarifa diaria del tamaño y false si el tamaño no existe.
func BaseRate(size SizeClass) (money.Money, bool) {
	rate, ok := baseRates[size]
	return rate, ok
}

func (s SizeClass) Valid() bool {
	_, ok := baseRates[s]
	return ok
}

// Animal es el perfil de un huésped de la guardería.
type Animal struct {
	ID string

	Name      string
	SizeClass SizeClass
	Breed     string
	Comment   string

	OwnerName  string
	OwnerPhone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch: nil = no tocar.
type Patch struct {
	Name       *string
	SizeClass  *SizeClass
	Breed      *string
	Comment    *string
	OwnerName  *string
	OwnerPhone *string
}

func (p Patch) Apply(a Animal) Animal {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.SizeClass != nil {
		a.SizeClass = *p.SizeClass
	}
	if p.Breed != nil {
		a.Breed = *p.Breed
	}
	if p.Comment != nil {
		a.Comment = *p.Comment
	}
	if p.OwnerName != nil {
		a.OwnerName = *p.OwnerName
	}
	if p.OwnerPhone != nil {
		a.OwnerPhone = *p.OwnerPhone
	}
	return a
}
