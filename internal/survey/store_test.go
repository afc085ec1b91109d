package survey

import (
	"sync"
	"testing"
	"time"

	"survey-bot/internal/models"
)

func TestStoreGetAbsent(t *testing.T) {
	store := NewSessionStore()
	if sess := store.Get(1); sess != nil {
		t.Errorf("expected nil for unknown user, got %+v", sess)
	}
}

func TestStorePutGet(t *testing.T) {
	store := NewSessionStore()
	sess := &models.UserSession{ID: "a", UserID: 1, StartedAt: time.Now()}

	store.Put(1, sess)
	if got := store.Get(1); got != sess {
		t.Errorf("expected the stored session back, got %+v", got)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestStorePutOverwrites(t *testing.T) {
	store := NewSessionStore()
	store.Put(1, &models.UserSession{ID: "a", UserID: 1})
	store.Put(1, &models.UserSession{ID: "b", UserID: 1})

	if got := store.Get(1); got.ID != "b" {
		t.Errorf("expected session b, got %q", got.ID)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session after overwrite, got %d", store.Len())
	}
}

func TestStoreConcurrentDistinctKeys(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.Put(id, &models.UserSession{UserID: id})
			if store.Get(id) == nil {
				t.Errorf("user %d: session missing after Put", id)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Errorf("expected 50 sessions, got %d", store.Len())
	}
}
