package config

// DefaultPersona is prepended to every prompt.
const DefaultPersona = "You are Inteligencia Azteca, a friendly chatbot that knows everything about Universidad de las Américas Puebla (UDLAP). " +
	"You can answer questions about admissions, faculties, student life, events, scholarships, and services. " +
	"Keep answers concise, friendly, and helpful, like a student ambassador."

const (
	DefaultFallbackText       = "Puedes obtener más información en el sitio oficial: https://www.udlap.mx/"
	DefaultSeeMoreTemplate    = "Puedes consultar más detalles en: %s"
	DefaultErrorReplyTemplate = "Ocurrió un error al procesar tu mensaje: %v"
)

// DefaultUncertaintyMarkers flag replies where the model could not answer.
var DefaultUncertaintyMarkers = []string{
	"no puedo",
	"no sé",
	"i can't",
	"i cannot",
	"i don't know",
	"i do not know",
}

// DefaultWebSearchKeywords hint that a question needs fresh web data.
var DefaultWebSearchKeywords = []string{
	"when", "where", "who", "how much", "schedule", "event", "deadline",
	"admission", "scholarship", "requirements", "cost", "faculty", "address", "date",
}

// DefaultTopics is the institutional keyword table, highest priority first.
func DefaultTopics() []map[string]interface{} {
	rows := [][2]string{
		{"admission", "https://www.udlap.mx/admisiones"},
		{"admisión", "https://www.udlap.mx/admisiones"},
		{"scholarship", "https://www.udlap.mx/becas"},
		{"beca", "https://www.udlap.mx/becas"},
		{"facultad", "https://www.udlap.mx/ofertaacademica"},
		{"faculty", "https://www.udlap.mx/ofertaacademica"},
		{"event", "https://www.udlap.mx/eventos"},
		{"evento", "https://www.udlap.mx/eventos"},
		{"costo", "https://www.udlap.mx/pagosycolegiaturas/costosycuotas"},
		{"vida estudiantil", "https://www.udlap.mx/vidauniversitaria"},
		{"servicio", "https://www.udlap.mx/servicios"},
		{"contacto", "https://www.udlap.mx/contacto"},
	}

	out := make([]map[string]interface{}, len(rows))
	for i, r := range rows {
		out[i] = map[string]interface{}{"keyword": r[0], "url": r[1]}
	}
	return out
}
