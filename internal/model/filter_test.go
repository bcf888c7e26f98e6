package model

import (
	"errors"
	"testing"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"all", ShowAll},
		{"ALL", ShowAll},
		{"SHOW ALL", ShowAll},
		{"show_open", ShowOpen},
		{" open ", ShowOpen},
		{"pending", ShowOpen},
		{"show-done", ShowDone},
		{"Done", ShowDone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if err != nil {
				t.Fatalf("ParseFilter(%q): unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFilterUnknown(t *testing.T) {
	for _, in := range []string{"", "everything", "SHOW"} {
		if _, err := ParseFilter(in); !errors.Is(err, ErrUnknownFilter) {
			t.Errorf("ParseFilter(%q): got err %v, want ErrUnknownFilter", in, err)
		}
	}
}

func TestFilterValid(t *testing.T) {
	for _, f := range Filters() {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Filter("SHOW SOME").Valid() {
		t.Error("SHOW SOME should not be valid")
	}
	if Filter("").Valid() {
		t.Error("empty filter should not be valid")
	}
}

func TestFilterLabel(t *testing.T) {
	tests := map[Filter]string{
		ShowAll:        "All",
		ShowOpen:       "Open",
		ShowDone:       "Done",
		Filter("junk"): "All",
	}
	for f, want := range tests {
		if got := f.Label(); got != want {
			t.Errorf("%q.Label(): got %q, want %q", f, got, want)
		}
	}
}
