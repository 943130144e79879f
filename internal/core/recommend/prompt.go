package recommend

import (
	"encoding/json"
	"fmt"
)

// Task selects a prompt template
type Task string

const (
	TaskRecommendations Task = "recommendations"
	TaskSuggestions     Task = "suggestions"
	TaskSentiment       Task = "sentiment"
)

// PromptComposer renders the fixed task templates. Pure string formatting,
// no side effects.
type PromptComposer struct{}

// Recommendations builds the retention-recommendations prompt pair
func (PromptComposer) Recommendations(c *ClientContext) (system, user string) {
	system = "Eres un experto en marketing de retención y fidelización para una tienda de ropa."

	user = fmt.Sprintf(`Eres un experto en marketing de retención para una tienda de ropa online.

PERFIL DEL CLIENTE:
%s

INSTRUCCIONES:
1. Genera 3-4 recomendaciones específicas y personalizadas para este cliente
2. Considera su riesgo de churn, categorías preferidas y comportamiento de compra
3. Cada recomendación debe ser accionable y concreta

RESPONDE SOLO CON UN JSON ARRAY:
[
  {
    "type": "discount|personal_message|call|email_sequence|loyalty_offer",
    "description": "Descripción específica de la acción (menciona categorías o productos concretos)",
    "urgency": "alta|media|baja",
    "channel": "email|sms|whatsapp|llamada|app",
    "reasoning": "Por qué esta recomendación funciona para este cliente"
  }
]

Ejemplo de buena recomendación:
"Enviar cupón del 20%% en camisas (su categoría favorita) válido por 7 días, ya que no compra hace 45 días"

NO uses recomendaciones genéricas como "mostrar productos populares".`, c.JSON())

	return system, user
}

// Suggestions builds the sales/engagement suggestions prompt pair
func (PromptComposer) Suggestions(c *ClientContext) (system, user string) {
	system = "Eres un experto en personalización de experiencias de compra."

	user = fmt.Sprintf(`Eres un consultor de experiencia del cliente para una tienda de ropa online.

PERFIL DEL CLIENTE:
%s

GENERA 2-3 sugerencias específicas para:
- Productos concretos basados en su historial
- Ofertas personalizadas (packs, cross-sell)
- Acciones de engagement específicas

RESPONDE SOLO CON JSON:
[
  {
    "type": "product_recommendation|bundle_offer|cross_sell|engagement_action",
    "title": "Título específico (menciona productos o categorías concretas)",
    "description": "Descripción detallada con productos/categorías específicas",
    "priority": "alta|media|baja",
    "expected_impact": "Impacto esperado específico (ej: 'Incremento 15%% en ticket promedio')"
  }
]

EJEMPLO de buena sugerencia:
"Pack de camisas + pantalón con 15%% extra (combina sus 2 categorías favoritas)"

NO uses sugerencias genéricas como "productos populares" u "ofertas estacionales".`, c.JSON())

	return system, user
}

// Sentiment builds the sentiment-analysis prompt pair
func (PromptComposer) Sentiment(text string) (system, user string) {
	system = "Eres un analista experto en NLP y sentimiento. Responde solo con JSON válido."

	quoted, _ := json.Marshal(text)
	user = fmt.Sprintf(`Analiza el sentimiento del siguiente texto y responde SOLO con un JSON VÁLIDO.

TEXTO: %s

Formato:
{
  "sentiment": "positive|negative|neutral",
  "confidence": 0.0,
  "emotions": ["joy","trust","anger","fear","surprise","sadness"],
  "key_phrases": ["...","..."]
}`, string(quoted))

	return system, user
}
