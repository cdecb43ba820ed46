package coupon

import (
	"time"

	"transfer/internal/types"
)

// Catalog is the static coupon table, keyed by normalized code.
var Catalog = map[string]Coupon{
	"BEMVINDO10": {
		Code: "BEMVINDO10", Description: "10% de desconto na primeira viagem",
		DiscountPercent: 10, Active: true,
	},
	"AEROPORTO15": {
		Code: "AEROPORTO15", Description: "15% de desconto em transfers de aeroporto",
		DiscountPercent: 15, MinimumPrice: types.BRL(200), Active: true,
	},
	"EXECUTIVO50": {
		Code: "EXECUTIVO50", Description: "R$50 de desconto em viagens acima de R$400",
		DiscountAmount: types.BRL(50), MinimumPrice: types.BRL(400), Active: true,
	},
	"BLINDADO20": {
		Code: "BLINDADO20", Description: "20% de desconto em veículos blindados",
		DiscountPercent: 20, MinimumPrice: types.BRL(350), MaxUses: 100, Active: true,
	},
	"VERAO2025": {
		Code: "VERAO2025", Description: "Campanha de verão 2025",
		DiscountPercent: 12, ValidUntil: time.Date(2025, 3, 20, 23, 59, 59, 0, time.UTC), Active: true,
	},
	"PARCEIRO": {
		Code: "PARCEIRO", Description: "Desconto para parceiros corporativos",
		DiscountPercent: 8, Active: false,
	},
}

func Lookup(code string) (Coupon, bool) {
	c, ok := Catalog[NormalizeCode(code)]
	return c, ok
}
