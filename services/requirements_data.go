package services

import (
	"necesitovisa/models"
)

// RequirementOverride is a partial Requirement. Nil/zero fields keep the
// value from the layer below; precedence is strictly
// pair override > destination override > default template.
type RequirementOverride struct {
	VisaRequired *bool
	MaxStayDays  *int
	AltPermit    *string
	PassportRule string
	OnwardTicket string
	FundsProof   string
	Notes        []string
	Sources      []models.Source
	Embassy      *models.Embassy
	LastReviewed string
}

var defaultRequirement = models.Requirement{
	MaxStayDays:  90,
	PassportRule: "Pasaporte vigente al menos 6 meses desde la fecha de ingreso.",
	OnwardTicket: "Suele requerirse prueba de salida o boleto de retorno.",
	FundsProof:   "Demuestra solvencia para cubrir gastos durante la estadía.",
	Notes: []string{
		"Confirma requisitos sanitarios y seguros de viaje vigentes.",
		"Algunas aerolíneas solicitan formularios adicionales antes del embarque.",
	},
	Sources: []models.Source{
		{Label: "Sitio oficial de migraciones", URL: "https://www.gov.example/requisitos"},
		{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
	},
	Embassy: models.Embassy{
		Name: "Embajada o consulado del destino",
		URL:  "https://www.embajada.example",
	},
	LastReviewed: "2024-06-01",
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

var destinationOverrides = map[string]RequirementOverride{
	"estados-unidos": {
		VisaRequired: boolPtr(true),
		AltPermit:    strPtr("ESTA"),
		Notes: []string{
			"La autorización ESTA aplica para viajes de turismo o negocios cortos.",
			"Si planeas trabajar o estudiar, se requiere una visa específica.",
		},
		Sources: []models.Source{
			{Label: "CBP / ESTA", URL: "https://esta.cbp.dhs.gov/"},
			{Label: "Embajada de EE.UU.", URL: "https://travel.state.gov/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de Estados Unidos",
			URL:  "https://www.usembassy.gov/",
		},
		LastReviewed: "2024-06-15",
	},
	"canada": {
		VisaRequired: boolPtr(true),
		AltPermit:    strPtr("eTA"),
		Sources: []models.Source{
			{Label: "Gobierno de Canadá", URL: "https://www.canada.ca/en/immigration-refugees-citizenship.html"},
			{Label: "eTA", URL: "https://www.canada.ca/eta"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada de Canadá",
			URL:  "https://www.international.gc.ca/",
		},
		LastReviewed: "2024-06-10",
	},
	"mexico": {
		VisaRequired: boolPtr(false),
		AltPermit:    strPtr("No aplica"),
		Sources: []models.Source{
			{Label: "Gobierno de México", URL: "https://www.gob.mx/"},
			{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
		},
		Embassy: &models.Embassy{
			Name: "Instituto Nacional de Migración",
			URL:  "https://www.gob.mx/inm",
		},
		LastReviewed: "2024-06-05",
	},
	"brasil": {
		VisaRequired: boolPtr(false),
		AltPermit:    strPtr("No aplica"),
		Sources: []models.Source{
			{Label: "Policía Federal de Brasil", URL: "https://www.gov.br/pf"},
			{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de Brasil",
			URL:  "https://www.gov.br/mre/pt-br",
		},
		LastReviewed: "2024-06-08",
	},
	"reino-unido": {
		VisaRequired: boolPtr(true),
		AltPermit:    strPtr("ETA"),
		Notes: []string{
			"La ETA se gestiona en línea y es necesaria incluso para estancias cortas.",
			"Si estudiarás o trabajarás, revisa la categoría de visa correspondiente.",
		},
		Sources: []models.Source{
			{Label: "UK Home Office", URL: "https://www.gov.uk/uk-border-control"},
			{Label: "ETA UK", URL: "https://www.gov.uk/guidance/electronic-travel-authorisation-eta"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada británica",
			URL:  "https://www.gov.uk/world/embassies",
		},
		LastReviewed: "2024-06-12",
	},
	"japon": {
		VisaRequired: boolPtr(true),
		Notes: []string{
			"Algunas nacionalidades pueden acceder a exención parcial; verifica tu caso.",
			"Puede pedirse itinerario detallado y reservas de alojamiento.",
		},
		Sources: []models.Source{
			{Label: "MOFA Japan", URL: "https://www.mofa.go.jp/j_info/visit/visa/"},
			{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de Japón",
			URL:  "https://www.mofa.go.jp/about/emb_cons/mofaserv.html",
		},
		LastReviewed: "2024-06-07",
	},
	"australia": {
		VisaRequired: boolPtr(true),
		AltPermit:    strPtr("ETA"),
		Sources: []models.Source{
			{Label: "Departamento de Home Affairs", URL: "https://immi.homeaffairs.gov.au/"},
			{Label: "ETA Australia", URL: "https://www.eta.homeaffairs.gov.au/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de Australia",
			URL:  "https://www.dfat.gov.au/about-us/our-locations/missions",
		},
		LastReviewed: "2024-06-11",
	},
	"china": {
		VisaRequired: boolPtr(true),
		Notes: []string{
			"Se suele requerir carta de invitación o reserva hotelera.",
			"Algunas ciudades permiten tránsito sin visa por 72/144 horas.",
		},
		Sources: []models.Source{
			{Label: "Embajada de China", URL: "https://www.fmprc.gov.cn/"},
			{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de la República Popular China",
			URL:  "https://www.fmprc.gov.cn/eng/wjb_663304/zwjg_665342/",
		},
		LastReviewed: "2024-06-04",
	},
	"turquia": {
		VisaRequired: boolPtr(true),
		AltPermit:    strPtr("eVisa"),
		Sources: []models.Source{
			{Label: "República de Türkiye", URL: "https://www.evisa.gov.tr/en/"},
			{Label: "Ministerio de Asuntos Exteriores", URL: "https://www.mfa.gov.tr/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado de Türkiye",
			URL:  "https://www.mfa.gov.tr/foreign-representations-of-turkiye.en.mfa",
		},
		LastReviewed: "2024-06-03",
	},
	"schengen": {
		VisaRequired: boolPtr(false),
		Notes: []string{
			"Para estancias hasta 90 días en un periodo de 180 días en el área Schengen.",
			"ETIAS será obligatorio cuando entre en vigor; sigue las actualizaciones oficiales.",
		},
		Sources: []models.Source{
			{Label: "Schengen Visa Info", URL: "https://www.schengenvisainfo.com/"},
			{Label: "IATA/Timatic", URL: "https://www.iatatravelcentre.com/"},
		},
		Embassy: &models.Embassy{
			Name: "Embajada o consulado del país Schengen principal",
			URL:  "https://home-affairs.ec.europa.eu/policies/schengen-borders-and-visa/visa-policy_en",
		},
		LastReviewed: "2024-06-09",
	},
}

// pairOverrides holds per-(origin, destination) corrections, keyed
// "originSlug|destSlug". They beat destination overrides, which beat the
// default template.
var pairOverrides = map[string]RequirementOverride{}

func pairKey(originSlug, destSlug string) string {
	return originSlug + "|" + destSlug
}

func applyOverride(base models.Requirement, override RequirementOverride) models.Requirement {
	if override.VisaRequired != nil {
		base.VisaRequired = *override.VisaRequired
	}
	if override.MaxStayDays != nil {
		base.MaxStayDays = *override.MaxStayDays
	}
	if override.AltPermit != nil {
		base.AltPermit = *override.AltPermit
	}
	if override.PassportRule != "" {
		base.PassportRule = override.PassportRule
	}
	if override.OnwardTicket != "" {
		base.OnwardTicket = override.OnwardTicket
	}
	if override.FundsProof != "" {
		base.FundsProof = override.FundsProof
	}
	if override.Notes != nil {
		base.Notes = append([]string(nil), override.Notes...)
	}
	if override.Sources != nil {
		base.Sources = append([]models.Source(nil), override.Sources...)
	}
	if override.Embassy != nil {
		base.Embassy = *override.Embassy
	}
	if override.LastReviewed != "" {
		base.LastReviewed = override.LastReviewed
	}
	return base
}

// BuildRequirement assembles the curated requirement for a pair by layering
// the default template, the destination override and the pair override.
func BuildRequirement(originSlug, destSlug string) models.Requirement {
	req := defaultRequirement
	req.Notes = append([]string(nil), defaultRequirement.Notes...)
	req.Sources = append([]models.Source(nil), defaultRequirement.Sources...)
	req.OriginSlug = originSlug
	req.DestSlug = destSlug

	if override, ok := destinationOverrides[destSlug]; ok {
		req = applyOverride(req, override)
	}
	if override, ok := pairOverrides[pairKey(originSlug, destSlug)]; ok {
		req = applyOverride(req, override)
	}
	return req
}

// FindRequirement returns the curated requirement for a pair, or false when
// the destination has no editorial coverage.
func FindRequirement(originSlug, destSlug string) (models.Requirement, bool) {
	known := false
	for _, dest := range models.DestinationCountries {
		if dest.Slug == destSlug {
			known = true
			break
		}
	}
	if !known {
		return models.Requirement{}, false
	}
	return BuildRequirement(originSlug, destSlug), true
}
