package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleRendersHoverBlock(t *testing.T) {
	var s Sheet
	s.Add(Rule{
		Selector: ".link",
		Decls:    Decls{D("color", "#A0A0A0")},
		Hover:    Decls{D("color", "#6366F1")},
	})

	out := s.String()
	assert.Contains(t, out, ".link {\n  color: #A0A0A0;\n}\n")
	assert.Contains(t, out, ".link:hover {\n  color: #6366F1;\n}\n")
	assert.Less(t, strings.Index(out, ".link {"), strings.Index(out, ".link:hover"))
}

func TestRuleRendersBeforeBlock(t *testing.T) {
	var s Sheet
	s.Add(Rule{Selector: ".ring", Before: Decls{D("content", `""`)}})

	out := s.String()
	assert.Contains(t, out, ".ring::before {")
	assert.NotContains(t, out, ".ring {")
}

func TestSheetOrdersKeyframesRulesMedia(t *testing.T) {
	var s Sheet
	s.AddMedia("768px", Rule{Selector: ".grid", Decls: Decls{D("grid-template-columns", "repeat(2, minmax(0, 1fr))")}})
	s.Add(Rule{Selector: ".grid", Decls: Decls{D("display", "grid")}})
	s.AddKeyframes(Keyframes{Name: "fade", Stops: []Stop{{Offset: "0%", Decls: Decls{D("opacity", "0")}}}})

	out := s.String()
	kf := strings.Index(out, "@keyframes fade")
	rule := strings.Index(out, ".grid {")
	media := strings.Index(out, "@media (min-width: 768px)")
	require.True(t, kf >= 0 && rule >= 0 && media >= 0)
	assert.Less(t, kf, rule)
	assert.Less(t, rule, media)
}

func TestSheetStringIsDeterministic(t *testing.T) {
	build := func() string {
		var s Sheet
		s.Add(Rule{Selector: "a", Decls: Decls{D("color", "red"), D("margin", "0")}})
		return s.String()
	}
	assert.Equal(t, build(), build())
}

func TestMerge(t *testing.T) {
	var a, b Sheet
	a.Add(Rule{Selector: "a", Decls: Decls{D("color", "red")}})
	b.Add(Rule{Selector: "b", Decls: Decls{D("color", "blue")}})
	b.AddKeyframes(Keyframes{Name: "k", Stops: []Stop{{Offset: "0%"}}})
	a.Merge(b)

	assert.Len(t, a.Rules, 2)
	assert.Len(t, a.Keyframes, 1)
}

func TestDeclsInlineAndGet(t *testing.T) {
	d := Decls{D("font-size", "2rem"), D("color", "red"), D("font-size", "3rem")}
	assert.Equal(t, "font-size: 2rem; color: red; font-size: 3rem", d.Inline())

	v, ok := d.Get("font-size")
	assert.True(t, ok)
	assert.Equal(t, "3rem", v)

	_, ok = d.Get("width")
	assert.False(t, ok)
}

func TestKeyframesValidate(t *testing.T) {
	tests := []struct {
		name    string
		k       Keyframes
		wantErr string
	}{
		{
			name: "valid",
			k:    Keyframes{Name: "k", Stops: []Stop{{Offset: "0%"}, {Offset: "50%"}, {Offset: "100%"}}},
		},
		{
			name:    "missing name",
			k:       Keyframes{Stops: []Stop{{Offset: "0%"}}},
			wantErr: "empty name",
		},
		{
			name:    "no stops",
			k:       Keyframes{Name: "k"},
			wantErr: "no stops",
		},
		{
			name:    "not a percentage",
			k:       Keyframes{Name: "k", Stops: []Stop{{Offset: "from"}}},
			wantErr: "not a percentage",
		},
		{
			name:    "above 100",
			k:       Keyframes{Name: "k", Stops: []Stop{{Offset: "120%"}}},
			wantErr: "outside",
		},
		{
			name:    "out of order",
			k:       Keyframes{Name: "k", Stops: []Stop{{Offset: "50%"}, {Offset: "10%"}}},
			wantErr: "out of order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.k.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
