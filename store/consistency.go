package store

import (
	"fmt"
	"strings"

	"github.com/gocql/gocql"
)

// Resolver traduit un jeton symbolique de consistance en niveau gocql.
// Deux instances vivent dans le store : une pour les écritures, une pour les
// lectures, chacune avec son défaut configuré indépendamment.
type Resolver struct {
	def gocql.Consistency
}

func NewResolver(def gocql.Consistency) Resolver {
	return Resolver{def: def}
}

// Resolve ne peut pas échouer : jeton absent → défaut sans warning ; jeton
// reconnu (insensible à la casse) → niveau correspondant ; jeton inconnu →
// défaut, avec un warning qui nomme le jeton rejeté et le défaut substitué.
func (r Resolver) Resolve(token string) (gocql.Consistency, string) {
	if token == "" {
		return r.def, ""
	}
	if level, ok := ParseLevel(token); ok {
		return level, ""
	}
	warning := fmt.Sprintf("Invalid consistency level '%s', using default '%s'", token, r.def)
	return r.def, warning
}

// ParseLevel est l'unique table de correspondance jeton → niveau. Énumération
// fermée : tout ce qui n'est pas listé ici est inconnu, pas de lookup
// dynamique.
func ParseLevel(token string) (gocql.Consistency, bool) {
	switch strings.ToUpper(token) {
	case "ANY":
		return gocql.Any, true
	case "ONE":
		return gocql.One, true
	case "TWO":
		return gocql.Two, true
	case "THREE":
		return gocql.Three, true
	case "QUORUM":
		return gocql.Quorum, true
	case "ALL":
		return gocql.All, true
	case "LOCAL_ONE":
		return gocql.LocalOne, true
	case "LOCAL_QUORUM":
		return gocql.LocalQuorum, true
	default:
		return 0, false
	}
}
