package remote

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// snapshot copia inmutable de una colección con su instante de captura.
type snapshot struct {
	data    []byte
	fetched time.Time
}

// Cache guarda snapshots por clave de recurso con revalidación por TTL.
// Las peticiones concurrentes por la misma clave se deduplican con
// singleflight: un refetch en vuelo sirve a todos los llamadores y el
// resultado de un fetch superado se descarta solo.
type Cache struct {
	source Source
	policy Policy

	mu      sync.RWMutex
	entries map[Key]snapshot

	group singleflight.Group
	now   func() time.Time
}

// NewCache construye el caché sobre un Source.
func NewCache(source Source, policy Policy) *Cache {
	return &Cache{
		source:  source,
		policy:  policy,
		entries: make(map[Key]snapshot),
		now:     time.Now,
	}
}

// Get devuelve el snapshot vigente de la clave, refrescándolo si su TTL
// venció. Si el refetch falla pero existe un snapshot previo, se sirve el
// snapshot viejo: datos envejecidos son preferibles a una pantalla rota.
func (c *Cache) Get(ctx context.Context, key Key) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Sub(entry.fetched) < c.policy[key] {
		return entry.data, nil
	}

	data, err, _ := c.group.Do(string(key), func() (any, error) {
		// Revalidar dentro del vuelo: otro llamador pudo habernos refrescado.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Sub(e.fetched) < c.policy[key] {
			return e.data, nil
		}

		raw, err := c.source.Fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = snapshot{data: raw, fetched: c.now()}
		c.mu.Unlock()
		return raw, nil
	})
	if err != nil {
		if ok {
			return entry.data, nil
		}
		return nil, err
	}
	return data.([]byte), nil
}

// Invalidate descarta el snapshot de la clave; el próximo Get refetchea.
// Se llama tras cada mutación exitosa sobre el recurso.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
