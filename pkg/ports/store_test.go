package ports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/ports"
	"github.com/stretchr/testify/assert"
)

// MockStore is a map-backed implementation of MatchInfoStore for testing purposes.
type MockStore struct {
	data map[int]domain.TextInjectMode
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[int]domain.TextInjectMode),
	}
}

func (m *MockStore) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	mode, ok := m.data[matchID]
	return mode, ok
}

func (m *MockStore) Put(ctx context.Context, matchID int, mode domain.TextInjectMode) error {
	m.data[matchID] = mode
	return nil
}

func (m *MockStore) Get(ctx context.Context, matchID int) (domain.TextInjectMode, error) {
	mode, ok := m.data[matchID]
	if !ok {
		return domain.TextInjectModeDefault, domain.ErrMatchNotFound
	}
	return mode, nil
}

func (m *MockStore) Delete(ctx context.Context, matchID int) error {
	delete(m.data, matchID)
	return nil
}

func (m *MockStore) List(ctx context.Context) (map[int]domain.TextInjectMode, error) {
	out := make(map[int]domain.TextInjectMode, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func TestMatchInfoStore_Contract(t *testing.T) {
	// The mock doubles as a reference implementation for adapters.
	ports.RunMatchInfoStoreContract(t, NewMockStore())
}

func TestMatchInfoProviderFunc(t *testing.T) {
	provider := ports.MatchInfoProviderFunc(func(id int) (domain.TextInjectMode, bool) {
		if id == 7 {
			return domain.TextInjectModeClipboard, true
		}
		return domain.TextInjectModeDefault, false
	})

	mode, ok := provider.ForceMode(7)
	assert.True(t, ok)
	assert.Equal(t, domain.TextInjectModeClipboard, mode)

	_, ok = provider.ForceMode(8)
	assert.False(t, ok)
}

type failingLookup struct{ ports.MatchInfoProviderFunc }

func (failingLookup) LookupForceMode(int) (domain.TextInjectMode, bool, error) {
	return domain.TextInjectModeDefault, false, errors.New("timeout")
}

func TestLookupForceMode(t *testing.T) {
	plain := ports.MatchInfoProviderFunc(func(int) (domain.TextInjectMode, bool) {
		return domain.TextInjectModeKeys, true
	})
	mode, ok, err := ports.LookupForceMode(plain, 1)
	assert.NoError(t, err, "providers without MatchInfoLookup never fail")
	assert.True(t, ok)
	assert.Equal(t, domain.TextInjectModeKeys, mode)

	_, ok, err = ports.LookupForceMode(failingLookup{plain}, 1)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDispatchFunc(t *testing.T) {
	var got []domain.Event
	var d ports.Dispatcher = ports.DispatchFunc(func(ev domain.Event) {
		got = append(got, ev)
	})

	d.Dispatch(domain.NewRendered(1, 2, "x"))
	ports.NopDispatcher.Dispatch(domain.NewRendered(1, 3, "y"))

	assert.Len(t, got, 1)
}
