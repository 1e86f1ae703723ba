package inventory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput    = errors.New("invalid input")
	ErrorNotFound        = errors.New("record not found")
	ErrorSessionNotFound = errors.New("editing session not found")
)

// RepositoryAPI define lo que el flujo de edición necesita del colaborador
// de persistencia. Permite testear sesiones y handlers con fakes sin tocar DB.
type RepositoryAPI interface {
	InsertOrUpdate(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	Delete(ctx context.Context, id int64) error
}

// Manager administra las sesiones de edición vivas: una por interacción.
// Las sesiones no se persisten; viven lo que dura la edición.
type Manager struct {
	repository RepositoryAPI
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager crea un manager de sesiones sobre el repositorio dado.
func NewManager(repository RepositoryAPI, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repository: repository,
		logger:     logger,
		sessions:   make(map[string]*Session),
	}
}

// Open abre una sesión para un record nuevo: draft vacío con id 0.
func (manager *Manager) Open() *Session {
	session := &Session{
		id:         uuid.NewString(),
		repository: manager.repository,
		logger:     manager.logger,
		state:      StateNew,
	}

	manager.mu.Lock()
	manager.sessions[session.id] = session
	manager.mu.Unlock()

	return session
}

// OpenForRecord hidrata una sesión desde un record persistido.
// La validez arranca en false hasta que el flujo de edición revalide.
func (manager *Manager) OpenForRecord(ctx context.Context, recordID int64) (*Session, error) {
	record, err := manager.repository.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	session := &Session{
		id:         uuid.NewString(),
		repository: manager.repository,
		logger:     manager.logger,
		draft:      record.ToDraft(),
		state:      StateEditing,
	}

	manager.mu.Lock()
	manager.sessions[session.id] = session
	manager.mu.Unlock()

	return session, nil
}

// Get busca una sesión viva por id.
func (manager *Manager) Get(sessionID string) (*Session, error) {
	manager.mu.RLock()
	session, ok := manager.sessions[sessionID]
	manager.mu.RUnlock()

	if !ok {
		return nil, ErrorSessionNotFound
	}
	return session, nil
}

// Close descarta una sesión terminada. El draft se pierde: nunca se persiste.
func (manager *Manager) Close(sessionID string) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.sessions[sessionID]; !ok {
		return ErrorSessionNotFound
	}
	delete(manager.sessions, sessionID)
	return nil
}

// Record busca un record persistido por id (para la vista de detalle).
func (manager *Manager) Record(ctx context.Context, recordID int64) (Record, error) {
	return manager.repository.GetByID(ctx, recordID)
}

// DeleteRecord elimina un record persistido por id.
func (manager *Manager) DeleteRecord(ctx context.Context, recordID int64) error {
	return manager.repository.Delete(ctx, recordID)
}
