package recommend

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned when a document cannot be ingested
// (e.g. PDF bytes without an extractor wired in).
var ErrUnsupportedFormat = errors.New("knowledge: unsupported document format")

// Document types
const (
	DocTypeBuiltIn = "built-in"
	DocTypeText    = "text"
	DocTypePDF     = "pdf-extracted"
)

// Document is one entry of appendable business knowledge
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	KeyPoints []string  `json:"key_points"`
	AddedAt   time.Time `json:"added_at"`
}

// PDFExtractor turns PDF bytes into plain text, page by page
type PDFExtractor interface {
	ExtractText(data []byte) (string, error)
}

// KnowledgeBase holds static business knowledge (seasonal trends, segment
// profiles, cross-sell rules) plus documents appended at runtime. Appended
// entries live for the process lifetime and are never removed. Writes are
// serialized by the lock; it is read-mostly after startup.
type KnowledgeBase struct {
	mu        sync.RWMutex
	seasonal  map[string][]string
	segments  map[string]string
	crossSell map[string][]string
	docs      map[string][]Document
	extractor PDFExtractor
}

// NewKnowledgeBase seeds the built-in retail knowledge
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		seasonal: map[string][]string{
			SeasonRainy: {"chaquetas impermeables", "botas", "paraguas", "capas ligeras"},
			SeasonDry:   {"camisetas frescas", "shorts", "sandalias", "gorras"},
			"invierno":  {"abrigos", "bufandas", "sueteres", "botas forradas"},
			"primavera": {"vestidos ligeros", "colores pastel", "chaquetas de entretiempo"},
			"verano":    {"trajes de baño", "shorts", "sandalias", "lino"},
			"otoño":     {"capas", "tonos tierra", "jeans", "cardigans"},
		},
		segments: map[string]string{
			"nuevo":     "Cliente reciente: priorizar primera recompra y registro de preferencias",
			"vip":       "Cliente de alto valor: acceso anticipado, atención preferente, sin descuentos agresivos",
			"frecuente": "Compra con regularidad: reforzar programa de puntos y cross-sell",
			"general":   "Segmento estándar: balancear ofertas y contenido de temporada",
		},
		crossSell: map[string][]string{
			"camisas":    {"pantalones", "joyeria"},
			"pantalones": {"camisas", "calzado"},
			"vestidos":   {"joyeria", "bolsos"},
			"calzado":    {"pantalones", "bolsos"},
			"abrigos":    {"camisas", "bufandas"},
			"bolsos":     {"vestidos", "joyeria"},
			"joyeria":    {"vestidos", "camisas"},
		},
		docs:      make(map[string][]Document),
		extractor: NewPDFExtractor(),
	}
}

// SetPDFExtractor overrides the PDF extraction capability (nil disables it)
func (kb *KnowledgeBase) SetPDFExtractor(extractor PDFExtractor) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.extractor = extractor
}

// GetContext assembles a short multi-line business context for a client:
// seasonal trends, segment profile, cross-sell targets and up to 3 key points
// from documents in the client's favorite category.
func (kb *KnowledgeBase) GetContext(c *ClientContext) string {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	var sb strings.Builder

	if trends, ok := kb.seasonal[c.Season]; ok {
		sb.WriteString(fmt.Sprintf("Tendencias de %s: %s\n", c.Season, strings.Join(trends, ", ")))
	}

	if profile, ok := kb.segments[strings.ToLower(c.Segment)]; ok {
		sb.WriteString(fmt.Sprintf("Segmento %s: %s\n", c.Segment, profile))
	}

	if targets, ok := kb.crossSell[c.FavoriteCategory]; ok {
		sb.WriteString(fmt.Sprintf("Cross-sell para %s: %s\n", c.FavoriteCategory, strings.Join(targets, ", ")))
	}

	points := 0
	for _, doc := range kb.docs[c.FavoriteCategory] {
		for _, kp := range doc.KeyPoints {
			if points >= 3 {
				break
			}
			sb.WriteString(fmt.Sprintf("Dato (%s): %s\n", doc.Title, kp))
			points++
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// AddDocument appends a plain-text document under a category and returns its id
func (kb *KnowledgeBase) AddDocument(content, title, category string) string {
	doc := Document{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Type:      DocTypeText,
		Category:  category,
		KeyPoints: extractKeyPoints(content),
		AddedAt:   time.Now(),
	}

	kb.mu.Lock()
	kb.docs[category] = append(kb.docs[category], doc)
	kb.mu.Unlock()

	return doc.ID
}

// AddPDF extracts plain text from PDF bytes and appends it as a document.
// Without an extractor the ingestion is rejected with ErrUnsupportedFormat.
func (kb *KnowledgeBase) AddPDF(data []byte, category string) (string, error) {
	kb.mu.RLock()
	extractor := kb.extractor
	kb.mu.RUnlock()

	if extractor == nil {
		return "", ErrUnsupportedFormat
	}

	text, err := extractor.ExtractText(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	doc := Document{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("PDF %s", time.Now().Format("2006-01-02")),
		Content:   text,
		Type:      DocTypePDF,
		Category:  category,
		KeyPoints: extractKeyPoints(text),
		AddedAt:   time.Now(),
	}

	kb.mu.Lock()
	kb.docs[category] = append(kb.docs[category], doc)
	kb.mu.Unlock()

	return doc.ID, nil
}

// Documents returns the documents stored under a category
func (kb *KnowledgeBase) Documents(category string) []Document {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	out := make([]Document, len(kb.docs[category]))
	copy(out, kb.docs[category])
	return out
}

var (
	keyPointTriggers = []string{
		"importante", "estrategia", "tendencia", "clave", "recomendado",
		"important", "strategy", "trend",
	}
	numericPattern = regexp.MustCompile(`\d+([.,]\d+)?\s*%?`)
)

// extractKeyPoints pulls up to 10 candidate lines from a document: lines of
// 20–200 characters that either contain a trigger word or a numeric/percentage
// figure. A heuristic, not a summarizer.
func extractKeyPoints(content string) []string {
	var points []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 20 || len(line) > 200 {
			continue
		}

		lower := strings.ToLower(line)
		matched := false
		for _, trigger := range keyPointTriggers {
			if strings.Contains(lower, trigger) {
				matched = true
				break
			}
		}
		if !matched && !numericPattern.MatchString(line) {
			continue
		}

		points = append(points, line)
		if len(points) >= 10 {
			break
		}
	}
	return points
}
