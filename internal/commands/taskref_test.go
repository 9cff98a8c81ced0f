package commands

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"todos/internal/tasklist"
)

func TestParseTaskRef_Number(t *testing.T) {
	n, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid_Error(t *testing.T) {
	for _, arg := range []string{"abc", "a1", "-1", "1.5", "٣"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		want := "invalid task reference: " + arg
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	}
}

func TestParseTaskRef_ExtraArg_Error(t *testing.T) {
	_, err := ParseTaskRef([]string{"1", "2"})
	if err == nil || err.Error() != "unexpected argument: 2" {
		t.Errorf("expected unexpected argument error, got %v", err)
	}
}

func TestParseTaskRefs_Mixed(t *testing.T) {
	refs, err := ParseTaskRefs([]string{"3", "1-2", "5"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 1, 2, 5}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("expected %v, got %v", want, refs)
	}
}

func TestParseTaskRefs_Dedupes(t *testing.T) {
	refs, err := ParseTaskRefs([]string{"2", "1-3", "2"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 1, 3}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("expected %v, got %v", want, refs)
	}
}

func TestParseTaskRefs_BadRange_Error(t *testing.T) {
	for _, arg := range []string{"4-2", "1-", "-3", "a-b", "1-2-3"} {
		_, err := ParseTaskRefs([]string{arg}, 5)
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		want := "invalid task reference: " + arg
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	}
}

func TestParseTaskRefs_InvalidToken_Error(t *testing.T) {
	_, err := ParseTaskRefs([]string{"1", "abc"}, 5)
	if err == nil || err.Error() != "invalid task reference: abc" {
		t.Errorf("expected invalid task reference: abc, got %v", err)
	}
}

func TestParseTaskRefs_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskRefs(nil, 5)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRefs_OutOfRange_Error(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"4"}, "task number out of range: 4"},
		{[]string{"0"}, "task number out of range: 0"},
		{[]string{"2-4"}, "task number out of range: 4"},
		{[]string{"0-2"}, "task number out of range: 0"},
		{[]string{"1", "7"}, "task number out of range: 7"},
	}
	for _, tt := range tests {
		_, err := ParseTaskRefs(tt.args, 3)
		if !errors.Is(err, tasklist.ErrOutOfRange) {
			t.Errorf("%v: expected ErrOutOfRange, got %v", tt.args, err)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, err.Error())
		}
	}
}

func TestParseTaskRefs_HugeRangeRejectedBeforeExpanding(t *testing.T) {
	start := time.Now()
	refs, err := ParseTaskRefs([]string{"1-999999999"}, 3)
	elapsed := time.Since(start)

	if !errors.Is(err, tasklist.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if refs != nil {
		t.Errorf("expected no refs, got %d", len(refs))
	}
	if elapsed > time.Second {
		t.Errorf("expected an immediate error, took %v", elapsed)
	}
}

func TestParseTaskRefs_EmptyList(t *testing.T) {
	_, err := ParseTaskRefs([]string{"1"}, 0)
	if !errors.Is(err, tasklist.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
