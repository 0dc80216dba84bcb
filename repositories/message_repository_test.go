package repositories

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"
)

func TestFindByUserOrdersNewestFirst(t *testing.T) {
	sent := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `messages` WHERE \\(?fromUser = \\? OR toUser = \\?\\)? ORDER BY sentAt DESC"),
			args:    []driver.Value{"owner1", "owner1"},
			columns: []string{"id", "fromUser", "toUser", "content", "sentAt", "isRead"},
			rows: [][]driver.Value{
				{"m2", "owner1", "abebe", "Resubmit required: photo", sent.Add(time.Hour), false},
				{"m1", "abebe", "owner1", "hello", sent, true},
			},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	messages, err := NewMessageRepository(db).FindByUser(context.Background(), "owner1")
	if err != nil {
		t.Fatalf("FindByUser returned error: %v", err)
	}
	if len(messages) != 2 || messages[0].ID != "m2" || !messages[1].IsRead {
		t.Fatalf("unexpected messages %+v", messages)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
