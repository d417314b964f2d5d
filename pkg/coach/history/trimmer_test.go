package history

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
)

func TestTrimKeepsMostRecent(t *testing.T) {
	var msgs []llm.Message
	for i := 0; i < 8; i++ {
		msgs = append(msgs, llm.Message{Role: "user", Content: "msg-" + strconv.Itoa(i)})
	}

	got := Trim(msgs)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Content != "msg-3" || got[4].Content != "msg-7" {
		t.Errorf("kept window = %q..%q, want msg-3..msg-7", got[0].Content, got[4].Content)
	}
}

func TestTrimTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("a", 1500)
	got := Trim([]llm.Message{{Role: "user", Content: long}})

	if len(got[0].Content) != 1000 {
		t.Errorf("truncated length = %d, want 1000", len(got[0].Content))
	}
}

func TestTrimTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 1200) // 2 bytes per rune
	got := Trim([]llm.Message{{Role: "user", Content: long}})

	if n := utf8.RuneCountInString(got[0].Content); n != 1000 {
		t.Errorf("truncated rune count = %d, want 1000", n)
	}
	if !utf8.ValidString(got[0].Content) {
		t.Error("truncation produced invalid UTF-8")
	}
}

func TestTrimLeavesShortHistoryUntouched(t *testing.T) {
	msgs := []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	got := Trim(msgs)

	if len(got) != 2 || got[0].Content != "hi" || got[1].Content != "hello" {
		t.Errorf("short history mutated: %+v", got)
	}
}

func TestTrimDoesNotMutateInput(t *testing.T) {
	long := strings.Repeat("b", 1200)
	msgs := []llm.Message{{Role: "user", Content: long}}

	Trim(msgs)

	if len(msgs[0].Content) != 1200 {
		t.Error("input slice was mutated")
	}
}
