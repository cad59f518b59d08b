package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ajanta Caves!!", "ajanta-caves"},
		{"  --Leading", "leading"},
		{"Ellora  &  Daulatabad", "ellora-daulatabad"},
		{"Bibi-ka-Maqbara", "bibi-ka-maqbara"},
		{"", ""},
		{"!!!", ""},
		{"Tour 2024", "tour-2024"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveSlugPrefersExplicit(t *testing.T) {
	if got := ResolveSlug("custom-slug", "Some Title"); got != "custom-slug" {
		t.Fatalf("expected explicit slug, got %q", got)
	}
	if got := ResolveSlug("   ", "Some Title"); got != "some-title" {
		t.Fatalf("expected derived slug, got %q", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:       "₹0",
		999:     "₹999",
		2500:    "₹2,500",
		125000:  "₹1,25,000",
		1234567: "₹12,34,567",
		-4500:   "-₹4,500",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Errorf("FormatINR(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	if got := Paginate(items, QueryOptions{Page: 2, Limit: 2}); len(got) != 2 || got[0] != 3 {
		t.Fatalf("unexpected page: %v", got)
	}
	if got := Paginate(items, QueryOptions{Page: 9, Limit: 2}); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}
	if got := Paginate(items, QueryOptions{Page: 1}); len(got) != 5 {
		t.Fatalf("expected all items without limit, got %v", got)
	}
	if got := Paginate(items, QueryOptions{Page: 4611686018427387905, Limit: 3}); len(got) != 0 {
		t.Fatalf("expected empty page for huge page number, got %v", got)
	}
}

func TestParseQueryOptionsCapsPaging(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=4611686018427387905&limit=100000", nil)
	opts := ParseQueryOptions(r)
	if opts.Page != MaxPage || opts.Limit != MaxLimit {
		t.Fatalf("opts = %+v", opts)
	}
	if got := Paginate([]int{1, 2, 3}, opts); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/?page=-3&limit=2", nil)
	if got := Paginate([]int{1, 2, 3}, ParseQueryOptions(r)); len(got) != 2 || got[0] != 1 {
		t.Fatalf("expected first page, got %v", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" Heritage, caves,heritage ,, UNESCO")
	want := []string{"heritage", "caves", "unesco"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseWithFallback(t *testing.T) {
	if got := ParseInt("abc", 2); got != 2 {
		t.Fatalf("expected fallback 2, got %d", got)
	}
	if got := ParseInt(" 4 ", 2); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestWriteErrorMapsCategories(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("tour"), http.StatusNotFound},
		{goerrors.New("bad", goerrors.CategoryValidation), http.StatusBadRequest},
		{goerrors.New("nope", goerrors.CategoryAuth), http.StatusUnauthorized},
		{goerrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, tc.err)
		if rec.Code != tc.want {
			t.Errorf("WriteError(%v) status = %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	html, err := RenderMarkdown("# Ajanta\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `<h1 id="ajanta">Ajanta</h1>`) {
		t.Fatalf("expected heading with id, got %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected raw html to be omitted, got %s", html)
	}
}

func TestRenamedSlug(t *testing.T) {
	explicit := "custom"
	empty := ""
	cases := []struct {
		name             string
		current, oldName string
		newName          string
		explicit         *string
		want             string
	}{
		{"rename derives", "old-title", "Old Title", "New Title", nil, "new-title"},
		{"unchanged keeps", "hand-made", "Title", "Title", nil, "hand-made"},
		{"explicit wins", "old-title", "Old Title", "New Title", &explicit, "custom"},
		{"empty explicit derives", "old-title", "Old Title", "New Title", &empty, "new-title"},
		{"cleared slug derives", "", "Title", "Title", &empty, "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenamedSlug(tc.current, tc.oldName, tc.newName, tc.explicit); got != tc.want {
				t.Errorf("RenamedSlug = %q, want %q", got, tc.want)
			}
		})
	}
}
