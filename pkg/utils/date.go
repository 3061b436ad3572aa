package utils

import "time"

// PurchaseDateLayout é o formato dd/mm/aaaa usado pela API de vendas
const PurchaseDateLayout = "02/01/2006"

// ParsePurchaseDate converte a data de compra no formato dd/mm/aaaa
func ParsePurchaseDate(dateStr string) (time.Time, error) {
	return time.Parse(PurchaseDateLayout, dateStr)
}

// EndOfMonth retorna o último dia do mês da data informada, à meia-noite
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
