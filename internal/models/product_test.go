package models_test

import (
	"testing"

	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/rogerio-castellano/faststock/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func TestProductString(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    string
	}{
		{
			name:    "generic without ID",
			product: models.NewGeneric("Chair", decimal.RequireFromString("45")),
			want:    "Chair | Price: $45.00",
		},
		{
			name: "electronic",
			product: func() models.Product {
				p := models.NewElectronic("Phone", decimal.RequireFromString("999.90"), 12)
				p.ID = 1
				return p
			}(),
			want: "[1] Phone | Price: $999.90 | Warranty: 12 months",
		},
		{
			name: "food",
			product: func() models.Product {
				p := models.NewFood("Apple", decimal.RequireFromString("0.5"), "2025-01-01")
				p.ID = 2
				return p
			}(),
			want: "[2] Apple | Price: $0.50 | Expires: 2025-01-01",
		},
		{
			name: "large ID and warranty are not digit grouped",
			product: func() models.Product {
				p := models.NewElectronic("Server", decimal.RequireFromString("12500"), 1200)
				p.ID = 1000
				return p
			}(),
			want: "[1000] Server | Price: $12500.00 | Warranty: 1200 months",
		},
		{
			name:    "price rounded to two decimals",
			product: models.NewGeneric("Gum", decimal.RequireFromString("1.999")),
			want:    "Gum | Price: $2.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProductFormat_BrazilianPortuguese(t *testing.T) {
	p := i18n.NewPrinter(language.BrazilianPortuguese)

	phone := models.NewElectronic("Celular", decimal.RequireFromString("999.90"), 12)
	phone.ID = 1
	if got, want := phone.Format(p), "[1] Celular | Preço: R$999.90 | Garantia: 12 meses"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	apple := models.NewFood("Maçã", decimal.RequireFromString("0.50"), "2025-01-01")
	if got, want := apple.Format(p), "Maçã | Preço: R$0.50 | Validade: 2025-01-01"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestConstructorsSetKind(t *testing.T) {
	price := decimal.NewFromInt(1)

	if k := models.NewGeneric("a", price).Kind; k != models.KindGeneric {
		t.Errorf("expected generic, got %s", k)
	}
	if k := models.NewElectronic("a", price, 1).Kind; k != models.KindElectronic {
		t.Errorf("expected electronic, got %s", k)
	}
	if k := models.NewFood("a", price, "2025-01-01").Kind; k != models.KindFood {
		t.Errorf("expected food, got %s", k)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		word   string
		want   models.Kind
		wantOK bool
	}{
		{"generic", models.KindGeneric, true},
		{"generico", models.KindGeneric, true},
		{"electronic", models.KindElectronic, true},
		{"eletronico", models.KindElectronic, true},
		{"food", models.KindFood, true},
		{"comida", models.KindFood, true},
		{"furniture", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := models.ParseKind(tt.word)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}
