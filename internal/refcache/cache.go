package refcache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrMiss lo devuelve un Store cuando la clave no está cacheada.
var ErrMiss = errors.New("refcache: miss")

// Store es el backend del caché. Redis en producción; MemoryStore
// en tests.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Cache es un read-through de datos de referencia (resúmenes
// denormalizados de barberos, servicios y pagos). Reemplaza los
// flyweights globales del sistema original por un objeto explícito que
// se inyecta donde hace falta, con TTL configurable (0 = vive lo que el
// proceso) e invalidación explícita para tests.
//
// Los datos servidos son de display, tolerantes a staleness: nunca son
// la autoridad para montos de pago.
type Cache struct {
	store Store
	ttl   time.Duration
	sf    singleflight.Group
}

func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// GetOrLoad lee del store y, en miss, ejecuta load exactamente una vez
// por vuelo (misses concurrentes de la misma clave se colapsan) y
// guarda el resultado.
func (c *Cache) GetOrLoad(
	ctx context.Context,
	key string,
	load func(ctx context.Context) ([]byte, error),
) ([]byte, error) {

	if b, err := c.store.Get(ctx, key); err == nil {
		return b, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.store.Set(ctx, key, b, c.ttl)
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate borra claves del store; hook para tests y para los
// escasos paths de escritura que quieran refrescar el display.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	_ = c.store.Del(ctx, keys...)
}

func getOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}

// ----------------------------------------------------
// MemoryStore
// ----------------------------------------------------

type memEntry struct {
	val       []byte
	expiresAt time.Time
}

type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memEntry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrMiss
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		return nil, ErrMiss
	}
	return e.val, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	e := memEntry{val: val}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
