package store

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"github.com/gocql/gocql"
)

// Intervalle en unités de 100ns entre l'epoch UUID (15/10/1582) et l'epoch
// Unix. C'est la base de temps du format TIMEUUID v1.
const uuidEpochOffset = 122192928000000000

// Generator produit des TIMEUUID strictement croissants pour une instance
// donnée. L'horloge murale seule ne suffit pas (deux appels peuvent tomber
// dans le même tick de 100ns) : sous mutex, si le timestamp n'avance pas, on
// l'incrémente d'une unité. L'ordre global entre processus reste seulement
// approximatif — chaque instance a son propre node et sa propre clock
// sequence aléatoires.
type Generator struct {
	mu       sync.Mutex
	last     int64
	clockSeq uint32
	node     []byte
}

func NewGenerator() *Generator {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand ne rend la main qu'avec de l'entropie ; si l'OS ne
		// peut pas en fournir, rien d'autre ne marchera non plus.
		panic(err)
	}
	return &Generator{
		clockSeq: uint32(binary.BigEndian.Uint16(buf[:2])),
		node:     buf[2:8],
	}
}

// Next ne peut pas échouer : au pire l'horloge stagne et le timestamp embarqué
// prend un peu d'avance sur l'heure réelle (résolution 100ns, rattrapée
// immédiatement).
func (g *Generator) Next() gocql.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := time.Now().UnixNano()/100 + uuidEpochOffset
	if ts <= g.last {
		ts = g.last + 1
	}
	g.last = ts

	return gocql.TimeUUIDWith(ts, g.clockSeq, g.node)
}

// Timestamp retrouve l'horodatage embarqué dans un TIMEUUID, sans perte
// au-delà de la résolution du format lui-même.
func Timestamp(id gocql.UUID) time.Time {
	return id.Time().UTC()
}
