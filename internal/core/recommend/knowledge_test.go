package recommend

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContextAssemblesSections(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddDocument(
		"Las camisas de lino crecieron 30% este trimestre.\nDato breve.\nEs importante destacar la línea premium en vitrina.",
		"Reporte trimestral",
		"camisas",
	)

	ctx := &ClientContext{
		Segment:          "vip",
		FavoriteCategory: "camisas",
		Season:           SeasonRainy,
	}

	text := kb.GetContext(ctx)

	assert.Contains(t, text, "Tendencias de "+SeasonRainy)
	assert.Contains(t, text, "Segmento vip")
	assert.Contains(t, text, "Cross-sell para camisas")
	assert.Contains(t, text, "crecieron 30%")
	assert.Contains(t, text, "importante")
}

func TestGetContextCapsKeyPointsAtThree(t *testing.T) {
	kb := NewKnowledgeBase()
	content := strings.Repeat("Dato importante sobre ventas del periodo actual.\n", 8)
	kb.AddDocument(content, "Doc largo", "calzado")

	ctx := &ClientContext{FavoriteCategory: "calzado", Season: SeasonDry}
	text := kb.GetContext(ctx)

	assert.Equal(t, 3, strings.Count(text, "Dato (Doc largo)"))
}

func TestAddDocumentExtractsKeyPoints(t *testing.T) {
	kb := NewKnowledgeBase()

	id := kb.AddDocument(
		"corto\n"+
			"La estrategia de packs elevó el ticket en tiendas físicas.\n"+
			"Una línea sin disparadores ni cifras que aporte nada util aqui.\n"+
			"El 45% de los clientes prefiere envío a domicilio.",
		"Notas",
		"bolsos",
	)
	require.NotEmpty(t, id)

	docs := kb.Documents("bolsos")
	require.Len(t, docs, 1)
	assert.Equal(t, DocTypeText, docs[0].Type)
	require.Len(t, docs[0].KeyPoints, 2)
	assert.Contains(t, docs[0].KeyPoints[0], "estrategia")
	assert.Contains(t, docs[0].KeyPoints[1], "45%")
}

func TestKeyPointsCappedAtTen(t *testing.T) {
	content := strings.Repeat("Tendencia al alza en accesorios urbanos 12%.\n", 15)
	points := extractKeyPoints(content)
	assert.Len(t, points, 10)
}

func TestAddPDFWithoutExtractor(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.SetPDFExtractor(nil)

	_, err := kb.AddPDF([]byte("%PDF-1.4 ..."), "camisas")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAddPDFGarbageBytes(t *testing.T) {
	kb := NewKnowledgeBase()

	_, err := kb.AddPDF([]byte("definitely not a pdf"), "camisas")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestConcurrentAppendsSerialize(t *testing.T) {
	kb := NewKnowledgeBase()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kb.AddDocument("La tendencia de temporada favorece tonos neutros.", "doc", "camisas")
		}()
	}
	wg.Wait()

	assert.Len(t, kb.Documents("camisas"), 20)
}
