package consultation

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-scribe/internal/soap"
)

type stubTranslator struct {
	out string
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	return s.out, nil
}

func newTestService() Service {
	assembler := soap.NewAssembler(&stubTranslator{out: "I have fever"}, zerolog.Nop())
	return NewService(NewRepository(), assembler, zerolog.Nop())
}

func f(v float64) *float64 { return &v }

func TestSubmitCreatesDraft(t *testing.T) {
	svc := newTestService()

	c, err := svc.Submit(context.Background(), SubmitRequest{
		PatientName: "Asha",
		Transcript:  "I have had a fever and cough for 3 days",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if c.ID == uuid.Nil {
		t.Error("expected a generated consultation id")
	}
	if c.Status != StatusDraft {
		t.Errorf("status = %s, want draft", c.Status)
	}
	if c.ApprovedByDoctor {
		t.Error("new consultation must not be approved")
	}
	if c.Note == nil {
		t.Fatal("expected an assembled note")
	}
	if c.DetectedLanguage != soap.LanguageEnglish {
		t.Errorf("detected language = %q", c.DetectedLanguage)
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("timestamps not set on save")
	}
}

func TestSubmitRejectsEmptyTranscript(t *testing.T) {
	svc := newTestService()

	for _, transcript := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Submit(context.Background(), SubmitRequest{Transcript: transcript}); err != ErrEmptyTranscript {
			t.Errorf("Submit(%q) error = %v, want ErrEmptyTranscript", transcript, err)
		}
	}
}

func TestSubmitValidatesVitalsAllAtOnce(t *testing.T) {
	svc := newTestService()

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Transcript: "I have a headache",
		Vitals: soap.Vitals{
			Temperature:      f(-5),
			PulseRate:        f(0),
			OxygenSaturation: f(150),
		},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"temperature", "pulse rate", "oxygen saturation"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestSubmitAcceptsValidVitals(t *testing.T) {
	svc := newTestService()

	c, err := svc.Submit(context.Background(), SubmitRequest{
		Transcript: "I have a headache",
		Vitals: soap.Vitals{
			Temperature:      f(101),
			OxygenSaturation: f(97),
		},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !strings.Contains(c.Note.Objective.Vitals, "Temp: 101°F") {
		t.Errorf("vitals line = %q", c.Note.Objective.Vitals)
	}
}

func TestGetAndList(t *testing.T) {
	svc := newTestService()

	first, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "fever"})
	second, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "cough"})

	got, err := svc.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("Get returned %s, want %s", got.ID, first.ID)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d items, want 2", len(list))
	}
	// Newest first.
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("list order = [%s %s], want newest first", list[0].ID, list[1].ID)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Get(context.Background(), uuid.New()); err != ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestApproveFlow(t *testing.T) {
	svc := newTestService()

	c, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "fever"})

	approved, err := svc.Approve(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != StatusApproved || !approved.ApprovedByDoctor {
		t.Errorf("approved consultation = %+v", approved)
	}
	if approved.ApprovedAt == nil {
		t.Error("approvedAt not set")
	}

	// Second approval is rejected.
	if _, err := svc.Approve(context.Background(), c.ID); err != ErrAlreadyApproved {
		t.Errorf("second approve error = %v, want ErrAlreadyApproved", err)
	}
}

func TestRejectFlow(t *testing.T) {
	svc := newTestService()

	c, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "fever"})

	rejected, err := svc.Reject(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Errorf("status = %s, want rejected", rejected.Status)
	}
	if rejected.ApprovedByDoctor {
		t.Error("rejected consultation must not be approved")
	}
}

func TestUpdateNoteReplacesNote(t *testing.T) {
	svc := newTestService()

	c, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "I have fever"})

	edited := *c.Note
	edited.Plan.Recommendations = "Rest and fluids for 3 days"

	updated, err := svc.UpdateNote(context.Background(), c.ID, &edited)
	if err != nil {
		t.Fatalf("UpdateNote returned error: %v", err)
	}
	if updated.Note.Plan.Recommendations != "Rest and fluids for 3 days" {
		t.Errorf("plan not updated: %q", updated.Note.Plan.Recommendations)
	}
}

func TestUpdateNoteFrozenAfterApproval(t *testing.T) {
	svc := newTestService()

	c, _ := svc.Submit(context.Background(), SubmitRequest{Transcript: "fever"})
	if _, err := svc.Approve(context.Background(), c.ID); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	if _, err := svc.UpdateNote(context.Background(), c.ID, c.Note); err != ErrAlreadyApproved {
		t.Errorf("error = %v, want ErrAlreadyApproved", err)
	}
}

func TestRepositoryCopiesOnRead(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	c := &Consultation{ID: uuid.New(), PatientName: "Asha"}
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	got.PatientName = "changed"

	again, _ := repo.GetByID(ctx, c.ID)
	if again.PatientName != "Asha" {
		t.Errorf("stored aggregate mutated through a read copy: %q", again.PatientName)
	}
}
