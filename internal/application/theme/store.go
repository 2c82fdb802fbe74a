// Package theme mantiene el estado de presentación global del proceso.
// El tema es estado explícito con ciclo Apply/Subscribe: cada cambio aplicado
// se persiste en el servicio de registros y se notifica a los suscriptores.
package theme

import (
	"context"
	"sync"

	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
	"github.com/jhoicas/comercio-dashboard/internal/domain/repository"
)

// Tipografías permitidas. Cualquier otra se normaliza a la por defecto.
var allowedFonts = map[string]bool{
	"cairo":   true,
	"tajawal": true,
	"almarai": true,
}

const defaultFont = "cairo"

// Defaults tema inicial cuando el servicio de registros no tiene uno guardado.
func Defaults() entity.Theme {
	return entity.Theme{
		Primary:     "hsl(222.2 47.4% 11.2%)",
		Variant:     "professional",
		Appearance:  entity.AppearanceSystem,
		Radius:      0.5,
		FontSize:    "medium",
		HeadingSize: "medium",
		FontFamily:  defaultFont,
	}
}

// Store titular del estado del tema. Seguro para uso concurrente.
type Store struct {
	saver repository.ThemeSaver

	mu      sync.RWMutex
	current entity.Theme
	subs    map[int]chan entity.Theme
	nextSub int
}

// NewStore construye el titular con el tema por defecto.
func NewStore(saver repository.ThemeSaver) *Store {
	return &Store{
		saver:   saver,
		current: Defaults(),
		subs:    make(map[int]chan entity.Theme),
	}
}

// Seed carga el tema guardado en el servicio de registros, si existe.
// Un fallo del upstream deja el tema por defecto: la apariencia nunca bloquea
// el arranque.
func (s *Store) Seed(ctx context.Context, store repository.CollectionStore) {
	saved, err := store.Theme(ctx)
	if err != nil || saved == nil {
		return
	}
	s.mu.Lock()
	s.current = sanitize(*saved)
	s.mu.Unlock()
}

// Current devuelve el tema vigente.
func (s *Store) Current() entity.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Apply normaliza, persiste y aplica el tema. Si la persistencia falla el
// estado vigente no cambia y no se notifica a nadie.
func (s *Store) Apply(ctx context.Context, t entity.Theme) (entity.Theme, error) {
	clean := sanitize(t)
	if err := s.saver.SaveTheme(ctx, clean); err != nil {
		return s.Current(), err
	}

	// El envío ocurre bajo el lock: así una baja concurrente no puede cerrar
	// un canal entre la foto del mapa y el send. Los envíos no bloquean.
	s.mu.Lock()
	s.current = clean
	for _, ch := range s.subs {
		select {
		case ch <- clean:
		default: // suscriptor lento: se queda con el estado que lea después
		}
	}
	s.mu.Unlock()
	return clean, nil
}

// Subscribe registra un suscriptor y devuelve su canal más la función de baja.
// El canal tiene buffer 1; un suscriptor que no lee no bloquea Apply.
func (s *Store) Subscribe() (<-chan entity.Theme, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan entity.Theme, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// sanitize aplica la lista de tipografías permitidas y valida la apariencia.
func sanitize(t entity.Theme) entity.Theme {
	if !allowedFonts[t.FontFamily] {
		t.FontFamily = defaultFont
	}
	switch t.Appearance {
	case entity.AppearanceLight, entity.AppearanceDark, entity.AppearanceSystem:
	default:
		t.Appearance = entity.AppearanceSystem
	}
	if t.Radius < 0 {
		t.Radius = 0
	}
	return t
}
