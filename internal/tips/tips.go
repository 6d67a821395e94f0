// Package tips serves short static advice strings keyed by category.
package tips

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is one of the closed set of tip categories. Anything outside the
// set falls back to General.
type Category string

const (
	General        Category = "general"
	Productivity   Category = "productivity"
	Finance        Category = "finance"
	Exercise       Category = "exercise"
	Hydration      Category = "hydration"
	TimeManagement Category = "timeManagement"
)

var categories = []Category{General, Productivity, Finance, Exercise, Hydration, TimeManagement}

func builtinTables() map[Category][]string {
	return map[Category][]string{
		General: {
			"Toma pequeños descansos cada hora para mantener tu productividad.",
			"Establece metas diarias alcanzables para mantener el momentum.",
			"La organización es clave para el éxito. Dedica 5 minutos al final del día para planear el siguiente.",
			"Celebra tus pequeños logros, son parte de un gran progreso.",
		},
		Productivity: {
			"Usa la técnica Pomodoro: 25 minutos de trabajo, 5 de descanso.",
			"Prioriza tus tareas usando la matriz de Eisenhower.",
			"Elimina las distracciones durante tus horas más productivas.",
			"Agrupa tareas similares para maximizar tu eficiencia.",
		},
		Finance: {
			"Guarda al menos el 20% de tus ingresos mensuales.",
			"Revisa tus gastos semanalmente para identificar áreas de mejora.",
			"Crea un fondo de emergencia para 3-6 meses de gastos.",
			"Antes de comprar algo, espera 24 horas para evitar compras impulsivas.",
		},
		Exercise: {
			"Comienza con ejercicios suaves y aumenta gradualmente.",
			"La consistencia es más importante que la intensidad.",
			"Combina ejercicio cardiovascular con entrenamiento de fuerza.",
			"No olvides calentar antes y estirar después del ejercicio.",
		},
		Hydration: {
			"Bebe un vaso de agua al despertar para activar tu metabolismo.",
			"Mantén una botella de agua visible en tu escritorio.",
			"Configura recordatorios para beber agua cada hora.",
			"El agua con limón puede ayudar a mantener tu hidratación.",
		},
		TimeManagement: {
			"Planifica tus tareas más importantes para las primeras horas del día.",
			"Usa un calendario para visualizar mejor tus compromisos.",
			"Aprende a decir \"no\" a compromisos que no aportan valor.",
			"Reserva tiempo para imprevistos en tu agenda diaria.",
		},
	}
}

// Provider selects tips uniformly at random from per-category tables.
type Provider struct {
	tables map[Category][]string
}

// NewProvider returns a provider with the built-in tables.
func NewProvider() *Provider {
	return &Provider{tables: builtinTables()}
}

// Random returns one tip from the given category. Unknown categories fall
// back to General. Selection is with replacement; consecutive calls may
// repeat.
func (p *Provider) Random(category Category) string {
	table, ok := p.tables[category]
	if !ok || len(table) == 0 {
		table = p.tables[General]
	}
	return table[rand.IntN(len(table))]
}

// LoadFile replaces tip tables from a YAML file mapping category names to
// string lists. Only the categories named in the file are overridden;
// unknown category names and empty lists are rejected.
func (p *Provider) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tips file: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse tips file: %w", err)
	}

	for name, table := range raw {
		category := Category(name)
		if !isKnownCategory(category) {
			return fmt.Errorf("tips file: unknown category %q", name)
		}
		if len(table) == 0 {
			return fmt.Errorf("tips file: category %q has no tips", name)
		}
		p.tables[category] = table
	}
	return nil
}

func isKnownCategory(c Category) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
