package scene

import (
	"errors"
	"reflect"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNames_Sorted(t *testing.T) {
	expected := []string{"cornell", "default", "glass", "mesh"}
	if got := Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() = %v, want %v", got, expected)
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(Names()) {
		t.Fatalf("Expected %d scenes, got %d", len(Names()), len(scenes))
	}
	for _, info := range scenes {
		if info.Description == "" {
			t.Errorf("Scene %q has no description", info.ID)
		}
		if info.DisplayName == "" {
			t.Errorf("Scene %q has no display name", info.ID)
		}
	}
}

func TestNew_AllScenesValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) returned error: %v", name, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene %q failed validation: %v", name, err)
			}
			if len(s.World.GetShapes()) == 0 {
				t.Errorf("Scene %q has an empty world", name)
			}
		})
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	if _, err := New("  Cornell "); err != nil {
		t.Errorf("Expected scene lookup to ignore case and whitespace, got %v", err)
	}
}

func TestNew_UnknownScene(t *testing.T) {
	s, err := New("teapot")
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if s != nil {
		t.Error("Expected nil scene on error")
	}
}
