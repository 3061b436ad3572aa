package dashboard

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// FilterBySellers mantém os registros cujo vendedor está na lista.
// Lista vazia mantém tudo. A ordem de entrada é preservada e o slice original não é alterado.
func FilterBySellers(records []domain.SaleRecord, sellers []string) []domain.SaleRecord {
	if len(sellers) == 0 {
		return records
	}

	selected := make(map[string]struct{}, len(sellers))
	for _, seller := range sellers {
		selected[seller] = struct{}{}
	}

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if _, ok := selected[record.Seller]; ok {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// DistinctSellers lista os vendedores na ordem em que aparecem pela primeira vez
func DistinctSellers(records []domain.SaleRecord) []string {
	seen := make(map[string]struct{})
	sellers := make([]string, 0)

	for _, record := range records {
		if _, ok := seen[record.Seller]; ok {
			continue
		}
		seen[record.Seller] = struct{}{}
		sellers = append(sellers, record.Seller)
	}

	return sellers
}
