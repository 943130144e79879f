package recommend

import "fmt"

// FallbackEngine produces deterministic, rule-based results keyed on churn
// tier and season. Total: never empty, never failing, for any input.
type FallbackEngine struct{}

// Recommendations returns tiered retention actions. The tiers mirror the
// behavior-pattern table: critical and at-risk clients get high-urgency
// contact actions, lower tiers get loyalty and cross-sell nudges.
func (FallbackEngine) Recommendations(churnScore int, season string) []Recommendation {
	if season == "" {
		season = SeasonDry
	}

	switch {
	case churnScore >= 80:
		return []Recommendation{
			{
				Type:        "personal_call",
				Description: "Llamada personal para entender qué productos necesita y recuperar la relación",
				Urgency:     UrgencyAlta,
				Channel:     "llamada",
				Reasoning:   "Cliente en riesgo crítico requiere contacto directo inmediato",
			},
			{
				Type:        "urgent_discount",
				Description: "Descuento urgente del 25% válido por 48 horas para reactivar compras",
				Urgency:     UrgencyAlta,
				Channel:     "email",
				Reasoning:   "Una ventana corta de oferta fuerza la decisión de recompra",
			},
			{
				Type:        "winback_bundle",
				Description: fmt.Sprintf("Pack de regreso con prendas de la %s y envío gratis", season),
				Urgency:     UrgencyAlta,
				Channel:     "whatsapp",
				Reasoning:   "Un bundle de temporada reduce la fricción de la primera recompra",
			},
		}

	case churnScore >= 60:
		return []Recommendation{
			{
				Type:        "targeted_offer",
				Description: "Oferta personalizada en su categoría de compra más frecuente",
				Urgency:     UrgencyAlta,
				Channel:     "email",
				Reasoning:   "Cliente en riesgo necesita un incentivo relevante antes de perderlo",
			},
			{
				Type:        "personal_message",
				Description: "Mensaje 1:1 con novedades de su categoría y CTA directo",
				Urgency:     UrgencyAlta,
				Channel:     "whatsapp",
				Reasoning:   "El contacto directo eleva la relevancia percibida",
			},
		}

	case churnScore >= 40:
		return []Recommendation{
			{
				Type:        "loyalty_offer",
				Description: "Puntos de fidelidad dobles en su próxima compra",
				Urgency:     UrgencyMedia,
				Channel:     "app",
				Reasoning:   "Refuerza el vínculo con el programa de lealtad",
			},
			{
				Type:        "cross_sell",
				Description: fmt.Sprintf("Accesorios que combinan con su última compra, destacando la %s", season),
				Urgency:     UrgencyMedia,
				Channel:     "email",
				Reasoning:   "El cross-sell mantiene al cliente activo sin descuentos agresivos",
			},
		}

	default:
		return []Recommendation{
			{
				Type:        "upsell",
				Description: "Recomendación de productos complementarios a sus compras anteriores",
				Urgency:     UrgencyBaja,
				Channel:     "email",
				Reasoning:   "Cliente estable, oportunidad de aumentar el ticket promedio",
			},
			{
				Type:        "seasonal_pick",
				Description: fmt.Sprintf("Selección de novedades de la %s según su historial", season),
				Urgency:     UrgencyMedia,
				Channel:     "app",
				Reasoning:   "El contenido de temporada sostiene la frecuencia de visita",
			},
		}
	}
}

// Suggestions returns the deterministic suggestion floor
func (FallbackEngine) Suggestions() []Suggestion {
	return []Suggestion{
		{
			Type:           "cross_sell",
			Title:          "Pack personalizado basado en historial",
			Description:    "Combinar 2-3 productos de categorías que el cliente ya compra con descuento del 10%",
			Priority:       UrgencyAlta,
			ExpectedImpact: "Incremento del 15-20% en ticket promedio",
		},
		{
			Type:           "engagement_action",
			Title:          "Encuesta de preferencias de 30 segundos",
			Description:    "Quiz breve para conocer colores, tallas y estilos preferidos del cliente",
			Priority:       UrgencyMedia,
			ExpectedImpact: "Mejora en precisión de recomendaciones futuras",
		},
	}
}

// Sentiment returns the neutral sentiment floor
func (FallbackEngine) Sentiment() SentimentResult {
	return SentimentResult{
		Sentiment:  "neutral",
		Confidence: 0.5,
		Emotions:   []string{},
		KeyPhrases: []string{},
		AIPowered:  false,
	}
}
