package admitdoc

import (
	"math/rand"
	"regexp"
	"testing"
)

func TestComputeDefaultFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   TemplateID
		rc   RenderContext
		want string
	}{
		{
			name: "id and student name",
			id:   OfferLetter,
			rc:   RenderContext{"student": map[string]any{"fullName": "Jane Mwale"}},
			want: "offerletter-jane-mwale.pdf",
		},
		{
			name: "punctuation runs collapse",
			id:   InterviewInvitation,
			rc:   RenderContext{"student": map[string]any{"fullName": "  O'Neil -- Banda, Jr. "}},
			want: "interviewinvitation-o-neil-banda-jr.pdf",
		},
		{
			name: "accents folded",
			id:   RejectionFeedback,
			rc:   RenderContext{"student": map[string]any{"fullName": "Zoë Ñambi"}},
			want: "rejectionfeedback-zoe-nambi.pdf",
		},
		{
			name: "missing name falls back to id",
			id:   PaymentBalanceStatement,
			rc:   RenderContext{"student": map[string]any{}},
			want: "paymentbalancestatement.pdf",
		},
		{
			name: "name without usable characters falls back to id",
			id:   OfferLetter,
			rc:   RenderContext{"student": map[string]any{"fullName": "!!! ???"}},
			want: "offerletter.pdf",
		},
		{
			name: "nil context",
			id:   OfferLetter,
			rc:   nil,
			want: "offerletter.pdf",
		},
		{
			name: "id without usable characters",
			id:   "***",
			rc:   nil,
			want: "document.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ComputeDefaultFileName(tt.id, tt.rc); got != tt.want {
				t.Errorf("ComputeDefaultFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

var fileNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*\.pdf$`)

func TestComputeDefaultFileName_Shape(t *testing.T) {
	t.Parallel()

	alphabet := []rune("aZ09 -_.,'!?éÑ漢字\t/\\")
	rng := rand.New(rand.NewSource(7))
	ids := []TemplateID{OfferLetter, InterviewInvitation, RejectionFeedback, PaymentBalanceStatement, "", "--"}

	for i := range 500 {
		name := make([]rune, rng.Intn(24))
		for j := range name {
			name[j] = alphabet[rng.Intn(len(alphabet))]
		}
		id := ids[rng.Intn(len(ids))]
		got := ComputeDefaultFileName(id, RenderContext{"student": map[string]any{"fullName": string(name)}})
		if !fileNamePattern.MatchString(got) {
			t.Fatalf("case %d: ComputeDefaultFileName(%q, %q) = %q, not a clean file name", i, id, string(name), got)
		}
	}
}
