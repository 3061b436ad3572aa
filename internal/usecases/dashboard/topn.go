package dashboard

// TopN devolve as n primeiras linhas de uma tabela já ordenada, sem copiar nem reordenar
func TopN[T any](rows []T, n int) []T {
	if n <= 0 {
		return rows[:0]
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}
