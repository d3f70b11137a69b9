package models

import (
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind discriminates the product variants.
type Kind string

const (
	KindGeneric    Kind = "generic"
	KindElectronic Kind = "electronic"
	KindFood       Kind = "food"
)

// kindWords maps folded type words, English and Portuguese, to a Kind.
var kindWords = map[string]Kind{
	"generic":    KindGeneric,
	"generico":   KindGeneric,
	"produto":    KindGeneric,
	"electronic": KindElectronic,
	"eletronico": KindElectronic,
	"food":       KindFood,
	"comida":     KindFood,
}

// ParseKind resolves a folded type word (see i18n.Fold) to a Kind.
func ParseKind(word string) (Kind, bool) {
	k, ok := kindWords[word]
	return k, ok
}

// Product represents a product entity in the inventory.
// WarrantyMonths is only meaningful for KindElectronic and Expiration only
// for KindFood.
type Product struct {
	ID             int             `json:"id"`
	Kind           Kind            `json:"kind"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	WarrantyMonths int             `json:"warranty_months,omitempty"`
	Expiration     string          `json:"expiration,omitempty"`
}

func NewGeneric(name string, price decimal.Decimal) Product {
	return Product{Kind: KindGeneric, Name: name, Price: price}
}

func NewElectronic(name string, price decimal.Decimal, warrantyMonths int) Product {
	return Product{Kind: KindElectronic, Name: name, Price: price, WarrantyMonths: warrantyMonths}
}

// NewFood builds a food product. expiration is expected as YYYY-MM-DD but is
// stored as given.
func NewFood(name string, price decimal.Decimal, expiration string) Product {
	return Product{Kind: KindFood, Name: name, Price: price, Expiration: expiration}
}

// Format renders the product as a single display line through p.
// Products without an ID yet render without the "[ID] " prefix.
func (pr Product) Format(p *message.Printer) string {
	price := pr.Price.StringFixed(2)

	var line string
	switch pr.Kind {
	case KindElectronic:
		line = p.Sprintf(i18n.ElectronicLine, pr.Name, price, strconv.Itoa(pr.WarrantyMonths))
	case KindFood:
		line = p.Sprintf(i18n.FoodLine, pr.Name, price, pr.Expiration)
	default:
		line = p.Sprintf(i18n.GenericLine, pr.Name, price)
	}

	if pr.ID == 0 {
		return line
	}
	return fmt.Sprintf("[%d] %s", pr.ID, line)
}

func (pr Product) String() string {
	return pr.Format(i18n.NewPrinter(language.English))
}
