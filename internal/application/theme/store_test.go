package theme_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-dashboard/internal/application/theme"
	"github.com/jhoicas/comercio-dashboard/internal/domain/entity"
)

type recordingSaver struct {
	saved []entity.Theme
	err   error
}

func (r *recordingSaver) SaveTheme(_ context.Context, t entity.Theme) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, t)
	return nil
}

func TestApply_NormalizaTipografiaYApariencia(t *testing.T) {
	saver := &recordingSaver{}
	store := theme.NewStore(saver)

	applied, err := store.Apply(context.Background(), entity.Theme{
		FontFamily: "comic-sans",
		Appearance: "neon",
	})

	require.NoError(t, err)
	assert.Equal(t, "cairo", applied.FontFamily, "tipografía fuera de la lista cae a la por defecto")
	assert.Equal(t, entity.AppearanceSystem, applied.Appearance)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, applied, saver.saved[0], "se persiste el tema ya normalizado")
	assert.Equal(t, applied, store.Current())
}

func TestApply_TipografiaPermitidaSeConserva(t *testing.T) {
	store := theme.NewStore(&recordingSaver{})

	applied, err := store.Apply(context.Background(), entity.Theme{
		FontFamily: "tajawal",
		Appearance: entity.AppearanceDark,
	})

	require.NoError(t, err)
	assert.Equal(t, "tajawal", applied.FontFamily)
	assert.Equal(t, entity.AppearanceDark, applied.Appearance)
}

func TestApply_FalloDePersistenciaNoCambiaElEstado(t *testing.T) {
	store := theme.NewStore(&recordingSaver{err: assert.AnError})
	before := store.Current()

	_, err := store.Apply(context.Background(), entity.Theme{FontFamily: "almarai"})

	assert.Error(t, err)
	assert.Equal(t, before, store.Current(), "el tema vigente no cambia si guardar falla")
}

func TestSubscribe_RecibeCadaAplicacion(t *testing.T) {
	store := theme.NewStore(&recordingSaver{})
	ch, cancel := store.Subscribe()
	defer cancel()

	applied, err := store.Apply(context.Background(), entity.Theme{
		FontFamily: "almarai", Appearance: entity.AppearanceLight,
	})
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, applied, got)
	default:
		t.Fatal("el suscriptor debió recibir el tema aplicado")
	}
}

func TestSubscribe_BajaDejaDeNotificar(t *testing.T) {
	store := theme.NewStore(&recordingSaver{})
	ch, cancel := store.Subscribe()
	cancel()

	_, err := store.Apply(context.Background(), entity.Theme{FontFamily: "cairo"})
	require.NoError(t, err)

	_, open := <-ch
	assert.False(t, open, "el canal se cierra al darse de baja")
}

func TestApply_ConcurrenteConBajas(t *testing.T) {
	store := theme.NewStore(&recordingSaver{})
	next := entity.Theme{FontFamily: "tajawal", Appearance: entity.AppearanceDark}

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Aplicaciones continuas mientras suscriptores entran y se dan de baja:
	// ninguna baja debe dejar a Apply enviando sobre un canal cerrado.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, err := store.Apply(context.Background(), next)
			assert.NoError(t, err)
		}
	}()

	for i := 0; i < 200; i++ {
		_, cancel := store.Subscribe()
		cancel()
	}
	close(done)
	wg.Wait()
}

func TestDefaults(t *testing.T) {
	d := theme.Defaults()
	assert.Equal(t, "cairo", d.FontFamily)
	assert.Equal(t, entity.AppearanceSystem, d.Appearance)
}
