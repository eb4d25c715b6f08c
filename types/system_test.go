package types

import (
	"encoding/json"
	"testing"
)

func TestInputSelectionStringsAndOther(t *testing.T) {
	for _, c := range []struct {
		in    InputSelection
		str   string
		other InputSelection
		valid bool
	}{
		{InputUSB, "USB", InputWireless, true},
		{InputWireless, "WIRELESS", InputUSB, true},
		{InputSelection(7), "INVALID", InputWireless, false},
	} {
		if got := c.in.String(); got != c.str {
			t.Fatalf("String(%d) = %q, want %q", c.in, got, c.str)
		}
		if got := c.in.Valid(); got != c.valid {
			t.Fatalf("Valid(%d) = %v, want %v", c.in, got, c.valid)
		}
		if c.valid && c.in.Other() != c.other {
			t.Fatalf("Other(%s) = %s, want %s", c.in, c.in.Other(), c.other)
		}
	}
}

func TestSystemInfoJSON(t *testing.T) {
	b, err := json.Marshal(SystemInfo{
		Device: "PLEN2", Input: InputWireless, Timer: TimerAttached, EEPROMSize: 1024,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["input"] != "WIRELESS" || m["timer"] != "ATTACHED" {
		t.Fatalf("unexpected enums in %s", b)
	}
	if m["eeprom_size"] != float64(1024) {
		t.Fatalf("eeprom_size = %v", m["eeprom_size"])
	}
}
