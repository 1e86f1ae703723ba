package inventory

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Subscriber recibe el par (draft, validez) cada vez que la sesión publica
// un cambio de estado.
type Subscriber func(draft Draft, valid bool)

// Estados de una sesión de edición.
const (
	StateNew     = "new"
	StateEditing = "editing"
	StateSaved   = "saved"
)

// Session es el state holder de una interacción de edición: un draft más su
// flag de validez derivado. El caller es único escritor lógico; el mutex
// solo cubre el acceso concurrente que impone servir HTTP.
type Session struct {
	id         string
	repository RepositoryAPI
	logger     *zap.Logger

	mu          sync.Mutex
	draft       Draft
	valid       bool
	state       string
	subscribers []Subscriber
}

// ID devuelve el identificador de la sesión.
func (session *Session) ID() string {
	return session.id
}

// State devuelve el estado actual (new/editing/saved).
func (session *Session) State() string {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state
}

// Snapshot devuelve el par (draft, validez) actual.
func (session *Session) Snapshot() (Draft, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.draft, session.valid
}

// Subscribe registra un subscriber que se notifica en cada UpdateDraft.
func (session *Session) Subscribe(subscriber Subscriber) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.subscribers = append(session.subscribers, subscriber)
}

// UpdateDraft reemplaza el draft, recalcula la validez y republica el par
// (draft, validez) a los subscribers. La validez se recalcula acá y no se
// memoiza en el draft para que siempre refleje los campos más recientes.
func (session *Session) UpdateDraft(draft Draft) (Draft, bool) {
	session.mu.Lock()
	session.draft = draft
	session.valid = draft.IsValid()
	session.state = StateEditing
	valid := session.valid
	subscribers := make([]Subscriber, len(session.subscribers))
	copy(subscribers, session.subscribers)
	session.mu.Unlock()

	// Notificamos fuera del lock: un subscriber puede volver a leer la sesión.
	for _, subscriber := range subscribers {
		subscriber(draft, valid)
	}

	return draft, valid
}

// Save convierte el draft a Record y pide persistencia al repositorio si la
// validez (recalculada en este punto) da true. Con draft inválido es un no-op
// silencioso: saved=false y error nil; el caller ya ve el flag de validez.
// La transición a saved recién se observa cuando la persistencia terminó;
// fallas del repositorio se propagan tal cual, sin retry ni wrapping.
func (session *Session) Save(ctx context.Context) (Record, bool, error) {
	session.mu.Lock()
	draft := session.draft
	valid := draft.IsValid()
	session.valid = valid
	session.mu.Unlock()

	if !valid {
		return Record{}, false, nil
	}

	persisted, err := session.repository.InsertOrUpdate(ctx, draft.ToRecord())
	if err != nil {
		return Record{}, false, err
	}

	session.mu.Lock()
	// El insert asigna id: lo reflejamos en el draft para que un re-save
	// de la misma sesión actualice en vez de duplicar.
	session.draft.ID = persisted.ID
	session.state = StateSaved
	session.mu.Unlock()

	session.logger.Info("record saved",
		zap.String("session_id", session.id),
		zap.Int64("record_id", persisted.ID),
	)

	return persisted, true, nil
}
