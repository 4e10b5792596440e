package gamemaster

import (
	"fanorona/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Run("games get distinct ids", func(t *testing.T) {
		m := NewManager()
		a := m.NewGame()
		b := m.NewGame()
		require.NotEmpty(t, a.ID)
		require.NotEqual(t, a.ID, b.ID)
		require.Equal(t, 2, m.Len())

		got, err := m.Get(a.ID)
		require.NoError(t, err)
		require.Same(t, a, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		m := NewManager()
		_, err := m.Get("missing")
		require.ErrorIs(t, err, ErrSessionNotFound)
		_, err = m.Restart("missing")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("restart keeps the id", func(t *testing.T) {
		m := NewManager()
		s := m.NewGame()
		_, err := s.AttemptMove(c(3, 2), c(4, 2))
		require.NoError(t, err)

		restarted, err := m.Restart(s.ID)
		require.NoError(t, err)
		require.Equal(t, s.ID, restarted.ID)
		require.Equal(t, game.NewBoard(), restarted.Board())
	})

	t.Run("remove", func(t *testing.T) {
		m := NewManager()
		s := m.NewGame()
		m.Remove(s.ID)
		_, err := m.Get(s.ID)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("concurrent creation", func(t *testing.T) {
		m := NewManager()
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := m.NewGame()
				_, err := m.Get(s.ID)
				require.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, 32, m.Len())
	})
}
