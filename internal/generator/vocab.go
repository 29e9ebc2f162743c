package generator

// Vocabulary bundles the fixed word banks the generator samples from.
// All pools must be non-empty; Validate enforces this before a run.
type Vocabulary struct {
	NameTemplates     []string
	NameParts         []string
	StreetTypes       []string
	StreetSuffixes    []string
	OpeningHours      []string
	Features          []string
	ReviewKeywords    []string
	PositiveTemplates []string
	NeutralTemplates  []string
	NegativeTemplates []string
	Reviewers         []string
}

// DefaultVocabulary returns the built-in Santo Domingo word banks.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		NameTemplates: []string{
			"Restaurante %s",
			"El %s",
			"La %s",
			"Casa %s",
			"Mesón %s",
			"Café %s",
			"Bar %s",
			"Comedor %s",
			"Cocina %s",
			"Sabor %s",
			"Rincón %s",
			"Parador %s",
			"Rancho %s",
			"Fonda %s",
			"Cantina %s",
		},
		NameParts: []string{
			"Adrian", "Bari", "Conde", "Palo", "Jalao", "Mitre", "Tropical", "Colonial", "Histórico",
			"Marina", "Plaza", "Central", "Nuevo", "Viejo", "Grande", "Pequeño", "Familiar", "Elegante",
			"Moderno", "Tradicional", "Especial", "Único", "Dorado", "Plateado", "Azul", "Rojo", "Verde",
			"Blanco", "Negro", "Amarillo", "Rosa", "Morado", "Naranja", "Café", "Chocolate", "Vainilla",
			"Fresa", "Mango", "Piña", "Coco", "Limon", "Uva", "Manzana", "Pera", "Durazno",
			"Criollo", "Típico", "Dominicano", "Quisqueya", "Taino", "Caribeño", "Isleño",
			"Bohío", "Hogar", "Familia", "Abuela", "Mamá", "Papá", "Hermano", "Primo", "Tío",
			"Santo", "Domingo", "Cristo", "María", "José", "Pedro", "Juan", "Carlos", "Miguel", "Luis",
			"Ana", "Carmen", "Isabel", "Elena", "Patricia", "Sandra", "Mónica", "Laura", "Sofia",
			"Malecón", "Zona", "Ciudad", "Capital", "República", "Dominicana",
			"Caribe", "Antillas", "Isla", "Tierra", "Sol", "Mar", "Playa", "Montaña", "Valle",
			"Río", "Lago", "Puerto", "Bahía", "Costa", "Península", "Cabo", "Punta", "Islote", "Cayito",
		},
		StreetTypes: []string{
			"Calle", "Avenida", "Boulevard", "Carrera", "Vía", "Carretera", "Callejón", "Pasaje",
			"Plaza", "Esquina", "Rincón", "Cuesta", "Subida", "Bajada", "Entrada",
		},
		StreetSuffixes: []string{
			"", "Norte", "Sur", "Este", "Oeste", "Central", "Principal", "Secundaria", "Nueva", "Vieja",
		},
		OpeningHours: []string{
			"6:00 AM - 10:00 PM",
			"7:00 AM - 11:00 PM",
			"8:00 AM - 9:00 PM",
			"11:00 AM - 11:00 PM",
			"12:00 PM - 10:00 PM",
			"6:00 PM - 12:00 AM",
			"24 Hours",
		},
		Features: []string{
			"Outdoor Seating", "Live Music", "Parking Available", "WiFi Available",
			"Family Friendly", "Pet Friendly", "Takeout Available", "Delivery Available",
			"Bar Available", "Private Dining", "Wheelchair Accessible", "Valet Parking",
			"Happy Hour", "Late Night", "Brunch", "Dessert Menu", "Wine List",
			"Cocktail Bar", "Dance Floor", "Pool Table", "TV Available",
		},
		ReviewKeywords: []string{
			"excelente comida", "muy bueno", "delicioso", "sabor auténtico",
			"buen servicio", "ambiente agradable", "precio justo", "recomendado",
			"comida fresca", "atendimiento amable", "lugar cómodo", "muy rico",
			"calidad excelente", "sabor increíble", "muy recomendable", "perfecto",
			"comida tradicional", "ambiente familiar", "muy sabroso", "excelente",
			"comida criolla", "sabor dominicano", "muy típico", "como en casa",
			"comida casera", "sabor de la abuela", "muy dominicano", "auténtico sabor",
			"comida del país", "sabor caribeño", "muy bueno el servicio", "ambiente dominicano",
			"comida tradicional dominicana", "sabor de Quisqueya", "muy rico el plato",
			"comida típica", "sabor isleño", "muy bueno todo", "ambiente criollo",
		},
		PositiveTemplates: []string{
			"%s, muy recomendado",
			"Excelente %s, ambiente agradable",
			"Muy buena %s, servicio rápido",
			"Deliciosa %s, porciones generosas",
			"Fantástica %s, precio justo",
			"Increíble %s, atención al cliente excelente",
			"Maravillosa %s, ambiente perfecto",
			"Excepcional %s, muy auténtico",
			"Extraordinaria %s, calidad excepcional",
			"Magnífica %s, experiencia única",
		},
		NeutralTemplates: []string{
			"Buena %s, servicio regular",
			"Decente %s, precio aceptable",
			"Normal %s, nada especial",
			"Estándar %s, cumple expectativas",
			"Regular %s, podría mejorar",
		},
		NegativeTemplates: []string{
			"Regular %s, servicio lento",
			"Discreta %s, precio alto",
			"Mediocre %s, no volvería",
			"Deficiente %s, atención mala",
			"Pobre %s, no recomendado",
		},
		Reviewers: []string{
			"María González", "Carlos Rodríguez", "Ana López", "Roberto Martínez",
			"Isabel Cruz", "Miguel Ángel", "Patricia Vega", "Diego López",
			"Rosa María", "Antonio Blanco", "Elena Fernández", "Luis Pérez",
			"Carmen Sánchez", "Roberto Méndez", "Isabel Castillo", "Carlos Mendoza",
			"Ana Patricia", "Miguel Silva", "Patricia Luna", "Diego Ramírez",
		},
	}
}

// Validate checks that every pool has at least one entry.
func (v *Vocabulary) Validate() error {
	pools := []struct {
		name    string
		entries []string
	}{
		{"name templates", v.NameTemplates},
		{"name parts", v.NameParts},
		{"street types", v.StreetTypes},
		{"street suffixes", v.StreetSuffixes},
		{"opening hours", v.OpeningHours},
		{"features", v.Features},
		{"review keywords", v.ReviewKeywords},
		{"positive templates", v.PositiveTemplates},
		{"neutral templates", v.NeutralTemplates},
		{"negative templates", v.NegativeTemplates},
		{"reviewers", v.Reviewers},
	}
	for _, p := range pools {
		if len(p.entries) == 0 {
			return newConfigError("vocabulary pool %q is empty", p.name)
		}
	}
	// Feature subsets are drawn without replacement, up to maxFeatures.
	if len(v.Features) < maxFeatures {
		return newConfigError("feature vocabulary needs at least %d entries, got %d", maxFeatures, len(v.Features))
	}
	return nil
}
