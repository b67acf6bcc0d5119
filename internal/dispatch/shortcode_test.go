package dispatch_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mk/hookline/internal/dispatch"
	"github.com/stretchr/testify/require"
)

// scProbe provides shortcode callbacks for expansion tests.
type scProbe struct{}

func (s *scProbe) Upper(ctx context.Context, attrs map[string]string, inner string) string {
	return strings.ToUpper(inner)
}

func (s *scProbe) Greet(ctx context.Context, attrs map[string]string, inner string) string {
	return "hello " + attrs["name"]
}

func (s *scProbe) Attrs(ctx context.Context, attrs map[string]string, inner string) string {
	return fmt.Sprintf("k=%s n=%s flag=%t", attrs["key"], attrs["n"], hasAttr(attrs, "flag"))
}

func (s *scProbe) Static(ctx context.Context, attrs map[string]string, inner string) string {
	return "static"
}

func (s *scProbe) Other(ctx context.Context, attrs map[string]string, inner string) string {
	return "other"
}

func hasAttr(attrs map[string]string, key string) bool {
	_, ok := attrs[key]
	return ok
}

func newShortcodeDispatcher() *dispatch.Dispatcher {
	p := &scProbe{}
	d := dispatch.New()
	d.RegisterShortcode("upper", cb(p, "Upper"))
	d.RegisterShortcode("greet", cb(p, "Greet"))
	d.RegisterShortcode("attrs", cb(p, "Attrs"))
	d.RegisterShortcode("static", cb(p, "Static"))
	return d
}

func TestExpandShortcodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no brackets passes through",
			content: "plain text",
			want:    "plain text",
		},
		{
			name:    "simple tag",
			content: "a [static] b",
			want:    "a static b",
		},
		{
			name:    "self-closing tag",
			content: "a [static/] b",
			want:    "a static b",
		},
		{
			name:    "quoted attribute",
			content: `[greet name="ada"]`,
			want:    "hello ada",
		},
		{
			name:    "bare attribute value",
			content: "[greet name=ada]",
			want:    "hello ada",
		},
		{
			name:    "enclosing form passes inner content",
			content: "say [upper]quietly[/upper] now",
			want:    "say QUIETLY now",
		},
		{
			name:    "enclosing tag without closer gets empty inner",
			content: "say [upper] now",
			want:    "say  now",
		},
		{
			name:    "mixed attribute styles",
			content: `[attrs key="v1" n=2 flag]`,
			want:    "k=v1 n=2 flag=true",
		},
		{
			name:    "unregistered tag passes through untouched",
			content: "keep [unknown a=1] and [/unknown] text",
			want:    "keep [unknown a=1] and [/unknown] text",
		},
		{
			name:    "stray open bracket is literal",
			content: "math: a[1] < a[2",
			want:    "math: a[1] < a[2",
		},
		{
			name:    "multiple tags in one document",
			content: "[greet name=ada], [upper]yes[/upper], [static]",
			want:    "hello ada, YES, static",
		},
		{
			name:    "adjacent tags",
			content: "[static][static]",
			want:    "staticstatic",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newShortcodeDispatcher()
			got := d.ExpandShortcodes(context.Background(), tc.content)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExpandShortcodes_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	p := &scProbe{}
	d := dispatch.New()
	d.RegisterShortcode("tag", cb(p, "Static"))
	d.RegisterShortcode("tag", cb(p, "Other"))

	got := d.ExpandShortcodes(context.Background(), "[tag]")
	require.Equal(t, "other", got)
}

func TestExpandShortcodes_UnresolvableCallbackExpandsToNothing(t *testing.T) {
	t.Parallel()

	p := &scProbe{}
	d := dispatch.New()
	d.RegisterShortcode("tag", cb(p, "NoSuchMethod"))

	got := d.ExpandShortcodes(context.Background(), "a [tag] b")
	require.Equal(t, "a  b", got)
}
