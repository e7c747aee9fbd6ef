package usecase

import (
	"testing"
)

func TestEditSession_Stage(t *testing.T) {
	t.Run("clamps on entry", func(t *testing.T) {
		s := NewEditSession()
		s.Stage("r-1", FieldPurchasing, 150)
		s.Stage("r-1", FieldProjectBound, -10)

		updates := s.Updates()
		if len(updates) != 1 {
			t.Fatalf("expected 1 staged line, got %d", len(updates))
		}
		if *updates[0].Purchasing != 100 {
			t.Fatalf("expected 150 clamped to 100, got %v", *updates[0].Purchasing)
		}
		if *updates[0].ProjectBound != 0 {
			t.Fatalf("expected -10 clamped to 0, got %v", *updates[0].ProjectBound)
		}
		if updates[0].AssemblyLabor != nil {
			t.Fatal("untouched field must stay nil")
		}
	})

	t.Run("last write wins per field", func(t *testing.T) {
		s := NewEditSession()
		s.Stage("r-1", FieldPurchasing, 40)
		s.Stage("r-1", FieldPurchasing, 60)
		s.Stage("r-1", FieldAssemblyLabor, 25)

		updates := s.Updates()
		if len(updates) != 1 {
			t.Fatalf("expected 1 staged line, got %d", len(updates))
		}
		if *updates[0].Purchasing != 60 {
			t.Fatalf("expected last write 60, got %v", *updates[0].Purchasing)
		}
		if *updates[0].AssemblyLabor != 25 {
			t.Fatalf("expected montage 25, got %v", *updates[0].AssemblyLabor)
		}
	})

	t.Run("preserves first touched order", func(t *testing.T) {
		s := NewEditSession()
		s.Stage("r-2", FieldPurchasing, 10)
		s.Stage("r-1", FieldPurchasing, 20)
		s.Stage("r-2", FieldAssemblyLabor, 30)

		updates := s.Updates()
		if len(updates) != 2 {
			t.Fatalf("expected 2 staged lines, got %d", len(updates))
		}
		if updates[0].LineKey != "r-2" || updates[1].LineKey != "r-1" {
			t.Fatalf("unexpected order: %s, %s", updates[0].LineKey, updates[1].LineKey)
		}
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		s := NewEditSession()
		s.Stage("r-1", CompletionField("percentage_gereed_onbekend"), 50)

		if got := s.Updates(); len(got) != 0 {
			t.Fatalf("unknown field must stage nothing, got %+v", got)
		}
		if s.Len() != 0 {
			t.Fatalf("unknown field must not register the line, got %d", s.Len())
		}
	})
}

func TestEditSession_Reset(t *testing.T) {
	s := NewEditSession()
	s.Stage("r-1", FieldPurchasing, 50)
	s.Stage("r-2", FieldPurchasing, 50)
	if s.Len() != 2 {
		t.Fatalf("expected 2 staged lines, got %d", s.Len())
	}

	s.Reset()
	if s.Len() != 0 || len(s.Updates()) != 0 {
		t.Fatal("reset must discard all staged edits")
	}
}
