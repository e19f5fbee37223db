package services

import (
	"fmt"
	"strings"
)

// VisaFaqItem is one question/answer pair rendered on a detail page.
type VisaFaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NormalizeFaqType folds free-form requirement labels (including legacy
// dataset values like "visa_free") into a RequirementType for FAQ selection.
func NormalizeFaqType(requirementType string) RequirementType {
	normalized := strings.ToLower(strings.TrimSpace(requirementType))

	switch {
	case strings.Contains(normalized, "evisa") || strings.Contains(normalized, "e-visa"):
		return TypeEVisa
	case strings.Contains(normalized, "esta"):
		return TypeESTA
	case strings.Contains(normalized, "eta"):
		return TypeETA
	case strings.Contains(normalized, "visa_free") || strings.Contains(normalized, "visa-free") || strings.Contains(normalized, "visa free"):
		return TypeNoVisa
	case strings.Contains(normalized, "visa_required") || strings.Contains(normalized, "visa required") || normalized == "required":
		return TypeRequiresVisa
	case strings.Contains(normalized, "voa") || strings.Contains(normalized, "on arrival"):
		return TypeVOA
	}

	return RequirementType(strings.ToUpper(normalized))
}

func baseFaqQuestions(destination string) []VisaFaqItem {
	return []VisaFaqItem{
		{
			Question: "¿Qué es una visa?",
			Answer:   "Es una autorización que emite el país de destino para permitir el ingreso por un período y motivo específicos, como turismo.",
		},
		{
			Question: "¿La visa garantiza la entrada al país?",
			Answer:   "No. La decisión final de entrada la toma la autoridad migratoria al llegar, y puede pedir documentos adicionales.",
		},
		{
			Question: "¿Con cuánta anticipación conviene iniciar el trámite?",
			Answer:   "Depende del tipo de permiso, pero es recomendable empezar con varias semanas de anticipación para evitar contratiempos.",
		},
		{
			Question: fmt.Sprintf("¿Qué documentos suelen pedir para viajar a %s?", destination),
			Answer:   "Generalmente se solicita pasaporte vigente y, en algunos casos, prueba de fondos, alojamiento o pasaje de salida.",
		},
	}
}

func faqForType(requirementType RequirementType, destination string) []VisaFaqItem {
	switch requirementType {
	case TypeNoVisa:
		return []VisaFaqItem{
			{
				Question: "¿Qué significa ingreso sin visa?",
				Answer:   "Significa que para viajes cortos de turismo no necesitas una visa previa para entrar.",
			},
			{
				Question: "¿Puedo quedarme por tiempo indefinido?",
				Answer:   "No. Aunque no se exija visa, normalmente hay un límite de días permitido para turismo.",
			},
			{
				Question: "¿Pueden pedirme documentos al llegar?",
				Answer:   "Sí. Pueden solicitar pasaje de salida, reservas o evidencia de solvencia.",
			},
		}
	case TypeNoVisaDays:
		return []VisaFaqItem{
			{
				Question: "¿Qué significa entrada sin visa por días limitados?",
				Answer:   "Puedes viajar por turismo sin visa, pero solo por un número máximo de días.",
			},
			{
				Question: "¿Qué pasa si necesito quedarme más tiempo?",
				Answer:   "Deberías gestionar una visa o permiso distinto antes del viaje o según las reglas locales.",
			},
			{
				Question: "¿Pueden pedirme documentos al llegar?",
				Answer:   "Sí. Aun sin visa, pueden pedir pasaje de salida, reservas o fondos.",
			},
		}
	case TypeEVisa:
		return []VisaFaqItem{
			{
				Question: "¿Qué es una eVisa?",
				Answer:   "Es una autorización electrónica que se solicita online antes del viaje y se asocia a tu pasaporte.",
			},
			{
				Question: "¿Cómo se solicita una eVisa?",
				Answer:   "Normalmente se completa un formulario en línea, se suben documentos y se paga una tasa.",
			},
			{
				Question: "¿Cuánto tarda en aprobarse?",
				Answer:   "Puede tardar desde horas hasta varios días, según el país y la temporada.",
			},
			{
				Question: fmt.Sprintf("¿Necesito imprimir la eVisa para viajar a %s?", destination),
				Answer:   "En muchos casos basta con el registro electrónico, pero es útil llevar una copia digital o impresa.",
			},
		}
	case TypeESTA:
		return []VisaFaqItem{
			{
				Question: "¿Qué es la autorización ESTA?",
				Answer:   "Es un permiso electrónico previo que habilita viajes cortos por turismo o tránsito sin visa tradicional.",
			},
			{
				Question: "¿La ESTA es una visa?",
				Answer:   "No. Es una autorización de viaje que se tramita en línea antes de volar.",
			},
			{
				Question: "¿Cuánto tiempo antes debo solicitarla?",
				Answer:   "Es recomendable hacerlo con días o semanas de anticipación para evitar retrasos.",
			},
			{
				Question: fmt.Sprintf("¿La ESTA sirve para cualquier motivo de viaje a %s?", destination),
				Answer:   "No. Usualmente aplica para turismo o tránsito; trabajo o estudio requieren otro trámite.",
			},
		}
	case TypeETA:
		return []VisaFaqItem{
			{
				Question: "¿Qué es una ETA?",
				Answer:   "Es una autorización electrónica previa que se solicita online antes de viajar por turismo o tránsito.",
			},
			{
				Question: "¿La ETA reemplaza a la visa tradicional?",
				Answer:   "Para viajes cortos sí, pero no cubre trabajo o estudio.",
			},
			{
				Question: "¿Cuándo debo solicitar la ETA?",
				Answer:   "Conviene hacerlo con anticipación, ya que la aprobación puede tomar tiempo.",
			},
			{
				Question: fmt.Sprintf("¿Debo llevar prueba de la ETA al viajar a %s?", destination),
				Answer:   "Es útil tener el comprobante a mano, aunque muchas veces queda asociada al pasaporte.",
			},
		}
	case TypeVOA:
		return []VisaFaqItem{
			{
				Question: "¿Qué es la visa a la llegada?",
				Answer:   "Es un permiso que se tramita al aterrizar o ingresar por frontera.",
			},
			{
				Question: "¿Qué se necesita para obtenerla?",
				Answer:   "Suele requerir pasaporte vigente, formulario y pago de tasas.",
			},
			{
				Question: "¿Puedo viajar sin preparación previa?",
				Answer:   "Aun con visa a la llegada, es aconsejable llevar documentos y fondos comprobables.",
			},
		}
	case TypeRequiresVisa:
		return []VisaFaqItem{
			{
				Question: "¿Qué es una visa consular tradicional?",
				Answer:   "Es un permiso que se solicita antes del viaje en un consulado o embajada, con requisitos y tiempos definidos.",
			},
			{
				Question: "¿Quién otorga la visa?",
				Answer:   "La otorga la autoridad migratoria del país de destino a través de su consulado o sistema oficial.",
			},
			{
				Question: "¿Cuánto tiempo antes debo solicitarla?",
				Answer:   "Se recomienda iniciar el trámite con varias semanas de anticipación.",
			},
			{
				Question: fmt.Sprintf("¿Puedo hacer escala en %s sin visa?", destination),
				Answer:   "Depende de si hay tránsito internacional sin pasar migración; algunas escalas exigen visado.",
			},
		}
	default:
		return []VisaFaqItem{
			{
				Question: "¿Qué significa requisito de visa por confirmar?",
				Answer:   "La información disponible no es concluyente y puede requerir verificación adicional.",
			},
			{
				Question: "¿Qué es una visa?",
				Answer:   "Es una autorización que emite el país de destino para permitir el ingreso por un período y motivo específicos.",
			},
			{
				Question: "¿La visa garantiza la entrada?",
				Answer:   "No. La autoridad migratoria define el ingreso al llegar.",
			},
		}
	}
}

// GetVisaFaq assembles the FAQ block for a detail page: type-specific items
// first, then the shared base questions, capped at 6 entries with a minimum
// of 4.
func GetVisaFaq(requirementType string, destination string) []VisaFaqItem {
	normalizedType := NormalizeFaqType(requirementType)
	items := append(faqForType(normalizedType, destination), baseFaqQuestions(destination)...)

	if len(items) > 6 {
		items = items[:6]
	}
	if len(items) < 4 {
		items = append(items, baseFaqQuestions(destination)...)
		items = items[:4]
	}
	return items
}
