package settings

import (
	"errors"
	"testing"
)

type memBackend struct {
	items map[string][]byte
	err   error
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(&memBackend{items: map[string][]byte{}})

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("Load() on empty store = ok %v, err %v; want nothing saved", ok, err)
	}

	want := Settings{WindowWidth: 1920, WindowHeight: 1080, ShowHUD: true}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStoreErrors(t *testing.T) {
	boom := errors.New("disk full")
	store := NewStore(&memBackend{items: map[string][]byte{}, err: boom})

	if err := store.Save(Settings{}); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, want %v", err, boom)
	}
	if _, _, err := store.Load(); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want %v", err, boom)
	}

	corrupt := NewStore(&memBackend{items: map[string][]byte{itemKey: []byte("{")}})
	if _, _, err := corrupt.Load(); err == nil {
		t.Error("Load() of corrupt data should fail")
	}
}
