package entities

import "github.com/shopspring/decimal"

// Stock is a read-only snapshot row of the SALDO tab.
//
// SaldoAtual is kept exactly as the sheet returns it; StockSummary parses it
// when totals are needed.

type Stock struct {
	Filial        string `json:"FILIAL"`
	EAN13         string `json:"EAN13"`
	CodigoProduto string `json:"CODIGO_PRODUTO"`
	Descricao     string `json:"DESCRIÇÃO"`
	Armazem       string `json:"ARMAZÉM"`
	SaldoAtual    string `json:"SALDO_ATUAL"`
}

// StockSummary is the balance of one EAN summed across filiais/armazéns.
type StockSummary struct {
	EAN13         string          `json:"ean13"`
	CodigoProduto string          `json:"codigoProduto"`
	Descricao     string          `json:"descricao"`
	Armazens      int             `json:"armazens"`
	SaldoTotal    decimal.Decimal `json:"saldoTotal"`
}
