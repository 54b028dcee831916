package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseImport,
				Kind:       KindOutOfBounds,
				Path:       []string{"clipper", "DisplayEnd"},
				GoType:     "int",
				NativeType: "s32",
				Detail:     "value does not fit",
			},
			contains: []string{"[import]", "out_of_bounds", "clipper.DisplayEnd", "Go type int", "native type s32", "value does not fit"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseExport,
				Kind:  KindInvalidData,
			},
			contains: []string{"[export]", "invalid_data"},
		},
		{
			name: "native type only",
			err: &Error{
				Phase:      PhaseLayout,
				Kind:       KindUnsupported,
				NativeType: "variant",
			},
			contains: []string{"[layout]", "native type variant"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[runtime]", "allocation", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRuntime,
		Kind:  KindAssertion,
		Path:  []string{"PopStyleVar"},
	}

	if !err.Is(&Error{Phase: PhaseRuntime, Kind: KindAssertion}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseFrame, Kind: KindAssertion}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRuntime, Kind: KindAllocation}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, Assertion("anything", "")) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseImport, KindOutOfBounds).
		Path("clipper", "ItemsCount").
		GoType("int").
		NativeType("s32").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "s32", "int").
		Build()

	if err.Phase != PhaseImport {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseImport)
	}
	if err.Kind != KindOutOfBounds {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
	}
	if len(err.Path) != 2 || err.Path[0] != "clipper" || err.Path[1] != "ItemsCount" {
		t.Errorf("Path = %v, want [clipper ItemsCount]", err.Path)
	}
	if err.GoType != "int" {
		t.Errorf("GoType = %v, want 'int'", err.GoType)
	}
	if err.NativeType != "s32" {
		t.Errorf("NativeType = %v, want 's32'", err.NativeType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected s32, got int" {
		t.Errorf("Detail = %v, want 'expected s32, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"AllocationFailed", AllocationFailed(PhaseRuntime, 1024, 8), KindAllocation},
		{"Assertion", Assertion("NewFrame", "display size not set"), KindAssertion},
		{"Unsupported", Unsupported(PhaseLayout, "variant"), KindUnsupported},
		{"FrameAssertion", FrameAssertion("EndFrame", "mismatched PopFont()"), KindAssertion},
		{"NoContext", NoContext(), KindNoContext},
		{"ContextDestroyed", ContextDestroyed(), KindContextDestroyed},
		{"InvalidInput", InvalidInput(PhaseFrame, "negative delta"), KindInvalidInput},
		{"Load", Load(KindInvalidData, "instantiate", errors.New("x")), KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}

	t.Run("AllocationFailed detail", func(t *testing.T) {
		err := AllocationFailed(PhaseRuntime, 1024, 8)
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("FrameAssertion phase", func(t *testing.T) {
		err := FrameAssertion("NewFrame", "forgot to call Render()")
		if err.Phase != PhaseFrame {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseFrame)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("parse")
		err := Wrap(PhaseFont, KindInvalidData, cause, "opentype")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})
}
