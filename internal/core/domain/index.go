package domain

import "strings"

// PriceIndex describes a monthly variation index available for correction.
type PriceIndex struct {
	IndexID     string `json:"indexID"`    // e.g. "IPCA"
	Name        string `json:"name"`       // Display name
	SourceCode  string `json:"sourceCode"` // Ipeadata series code
	Description string `json:"description"`
}

// indexCatalog lists the indices the service can fetch, in display order.
var indexCatalog = []PriceIndex{
	{IndexID: "IPCA", Name: "IPCA", SourceCode: "PRECOS12_IPCAG12", Description: "Índice Nacional de Preços ao Consumidor Amplo (IBGE)"},
	{IndexID: "IGP_M", Name: "IGP-M", SourceCode: "IGP12_IGPMG12", Description: "Índice Geral de Preços do Mercado (FGV)"},
	{IndexID: "IGP_DI", Name: "IGP-DI", SourceCode: "IGP12_IGPDIG12", Description: "Índice Geral de Preços - Disponibilidade Interna (FGV)"},
	{IndexID: "SELIC_OVER", Name: "SELIC (Over)", SourceCode: "BM12_TJOVER12", Description: "Taxa de juros Selic over (BCB)"},
	{IndexID: "INPC", Name: "INPC", SourceCode: "PRECOS12_INPCBR12", Description: "Índice Nacional de Preços ao Consumidor (IBGE)"},
	{IndexID: "IPC_BR", Name: "IPC-BR", SourceCode: "IGP12_IPCG12", Description: "Índice de Preços ao Consumidor - Brasil (FGV)"},
	{IndexID: "IPC_FIPE", Name: "IPC-FIPE", SourceCode: "FIPE12_FIPE0001", Description: "Índice de Preços ao Consumidor (FIPE)"},
}

// PriceIndices returns a copy of the index catalog.
func PriceIndices() []PriceIndex {
	out := make([]PriceIndex, len(indexCatalog))
	copy(out, indexCatalog)
	return out
}

// CanonicalIndexID upper-cases id and maps dashes to underscores, so "igp-m" becomes "IGP_M".
func CanonicalIndexID(id string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(id)), "-", "_")
}

// FindPriceIndex looks up an index by ID (case-insensitive, "-" and "_" interchangeable).
func FindPriceIndex(id string) (PriceIndex, bool) {
	canonical := CanonicalIndexID(id)
	for _, idx := range indexCatalog {
		if idx.IndexID == canonical {
			return idx, true
		}
	}
	return PriceIndex{}, false
}
