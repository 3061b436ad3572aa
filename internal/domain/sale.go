package domain

import "time"

// SaleRecord representa uma linha da tabela de vendas já validada na borda da API
type SaleRecord struct {
	PurchaseDate time.Time `json:"purchase_date"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Seller       string    `json:"seller"`
	State        string    `json:"state"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`

	// Campos opcionais, apenas repassados na API JSON
	Product      string  `json:"product,omitempty"`
	Freight      float64 `json:"freight,omitempty"`
	PaymentType  string  `json:"payment_type,omitempty"`
	Installments int     `json:"installments,omitempty"`
	Rating       int     `json:"rating,omitempty"`
}

// SalesQuery é a parte dos filtros aplicada no servidor de vendas
type SalesQuery struct {
	Region string
	Year   string
}

// Key identifica a consulta para deduplicar chamadas simultâneas
func (q SalesQuery) Key() string {
	return q.Region + "|" + q.Year
}
