package store

import (
	"context"
	"time"

	"github.com/Lucas-Veillard/KanalBack/models"
	"github.com/gocql/gocql"
)

// Store est le handle explicite sur le stockage, construit une fois au
// démarrage et injecté partout. Aucun état mutable en process à part la
// session gocql (elle-même sûre en concurrence) : toute la synchronisation
// d'unicité est déléguée aux écritures conditionnelles de Scylla.
type Store struct {
	sess     *gocql.Session
	gen      *Generator
	writeRes Resolver
	readRes  Resolver
}

// Options porte les deux défauts de consistance, configurés indépendamment
// pour les écritures et les lectures.
type Options struct {
	WriteConsistency gocql.Consistency
	ReadConsistency  gocql.Consistency
}

func New(session *gocql.Session, opts Options) *Store {
	return &Store{
		sess:     session,
		gen:      NewGenerator(),
		writeRes: NewResolver(opts.WriteConsistency),
		readRes:  NewResolver(opts.ReadConsistency),
	}
}

func (s *Store) session() (*gocql.Session, error) {
	if s == nil || s.sess == nil {
		return nil, ErrNotInitialized
	}
	return s.sess, nil
}

// AppendRequest : valeurs primitives déjà structurellement validées par le
// transport (longueurs de champs, présence). ClientKey vide = pas
// d'idempotence demandée.
type AppendRequest struct {
	ChannelID   string
	UserID      string
	Content     string
	ClientKey   string
	Consistency string
}

// AppendResult : soit Accepted (MessageID + CreatedAt renseignés), soit
// Deduplicated. Warning éventuel du resolver dans les deux cas.
type AppendResult struct {
	Deduplicated bool
	MessageID    gocql.UUID
	CreatedAt    time.Time
	Warning      string
}

// AppendMessage résout la consistance, pose la clé d'idempotence si une clé
// client est fournie, puis génère l'id et écrit le message. Deux opérations
// réseau séquentielles au maximum (claim puis insert), sans transaction
// distribuée : voir tryClaim pour la fenêtre de panne assumée.
func (s *Store) AppendMessage(ctx context.Context, req AppendRequest) (*AppendResult, error) {
	level, warning := s.writeRes.Resolve(req.Consistency)

	if req.ClientKey != "" {
		accepted, err := s.tryClaim(ctx, req.ChannelID, req.ClientKey, level)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return &AppendResult{Deduplicated: true, Warning: warning}, nil
		}
	}

	id := s.gen.Next()
	msg := models.Message{
		ChannelID: req.ChannelID,
		MessageID: id,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: Timestamp(id),
	}
	if err := s.appendMessage(ctx, msg, level); err != nil {
		return nil, err
	}

	return &AppendResult{MessageID: id, CreatedAt: msg.CreatedAt, Warning: warning}, nil
}

// ListRequest : Before/After sont les curseurs bruts (chaînes), validés par
// le paginator avant tout appel storage.
type ListRequest struct {
	ChannelID   string
	Limit       int
	Before      string
	After       string
	Consistency string
}

type ListResult struct {
	Messages   []models.Message
	NextBefore *gocql.UUID
	Warning    string
}

// ListMessages valide la requête de pagination, résout la consistance de
// lecture, puis lit la page et calcule le curseur de continuation.
func (s *Store) ListMessages(ctx context.Context, req ListRequest) (*ListResult, error) {
	q, err := validateListRequest(req)
	if err != nil {
		return nil, err
	}

	level, warning := s.readRes.Resolve(req.Consistency)

	page, err := s.readPage(ctx, req.ChannelID, q.limit, q.before, q.after, level)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Messages:   page,
		NextBefore: nextBefore(page),
		Warning:    warning,
	}, nil
}

// ReleaseClaim expose le chemin de maintenance pour libérer une clé
// d'idempotence orpheline (claim posé, message jamais écrit). Réservé à la
// surface debug.
func (s *Store) ReleaseClaim(ctx context.Context, channelID, clientKey string) error {
	level, _ := s.writeRes.Resolve("")
	return s.releaseClaim(ctx, channelID, clientKey, level)
}

// AppendRaw écrit un message déjà construit au niveau donné, sans résolution
// de consistance ni déduplication. Réservé aux outils (seeder debug).
func (s *Store) AppendRaw(ctx context.Context, msg models.Message, level gocql.Consistency) error {
	return s.appendMessage(ctx, msg, level)
}

// NextID expose le générateur pour les outils (seeder debug).
func (s *Store) NextID() gocql.UUID {
	return s.gen.Next()
}

// WriteLevel expose le défaut d'écriture résolu (seeder debug).
func (s *Store) WriteLevel() gocql.Consistency {
	level, _ := s.writeRes.Resolve("")
	return level
}
