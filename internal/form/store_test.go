package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreStartsFromDefaults(t *testing.T) {
	s := NewStore()
	require.Equal(t, InitialState(), s.State())
	require.NotEmpty(t, s.ID())
	require.NotEqual(t, s.ID(), NewStore().ID())
}

func TestSubmitWithMissingFieldShowsModal(t *testing.T) {
	for _, fill := range []func(*Store){
		func(*Store) {},
		func(s *Store) { s.Dispatch(SetNameAction("Ada")) },
		func(s *Store) { s.Dispatch(SetEmailAction("a@x.com")) },
	} {
		s := NewStore()
		fill(s)
		before := s.State()

		got := s.Submit()
		require.True(t, got.ShowModal)
		require.Equal(t, before.IsLoggedIn, got.IsLoggedIn)
		require.Equal(t, before.Name, got.Name)
		require.Equal(t, before.Email, got.Email)
	}
}

func TestSubmitWithBothFieldsLogsIn(t *testing.T) {
	s := NewStore()
	s.Dispatch(SetNameAction("Ada"))
	s.Dispatch(SetEmailAction("a@x.com"))

	got := s.Submit()
	require.True(t, got.IsLoggedIn)
	require.False(t, got.ShowModal)
	require.Equal(t, got, s.State())
}

func TestSubmitLeavesOpenModalAlone(t *testing.T) {
	s := NewStore()
	s.Dispatch(ShowModalAction())
	s.Dispatch(SetNameAction("Ada"))
	s.Dispatch(SetEmailAction("a@x.com"))

	got := s.Submit()
	require.True(t, got.IsLoggedIn)
	require.True(t, got.ShowModal)
}
