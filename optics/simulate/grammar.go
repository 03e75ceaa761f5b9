package simulate

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// stackLexer tokenizes "air | sio2 200nm | w 0.4um | air".
var stackLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Number", Pattern: `[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\-]*`},
	{Name: "Pipe", Pattern: `\|`},
})

type stackFile struct {
	Layers []*stackLayer `parser:"@@ ( Pipe @@ )*"`
}

type stackLayer struct {
	Pos       lexer.Position
	Material  string          `parser:"@Ident"`
	Thickness *stackThickness `parser:"@@?"`
}

type stackThickness struct {
	Value float64 `parser:"@Number"`
	Unit  string  `parser:"@Ident"`
}

var stackParser = participle.MustBuild[stackFile](
	participle.Lexer(stackLexer),
	participle.Elide("Whitespace"),
)

// unitScale maps a thickness unit to metres.
var unitScale = map[string]float64{
	"nm": 1e-9,
	"um": 1e-6,
	"mm": 1e-3,
	"m":  1,
}

// ParseStack parses a stack written as layers separated by "|". Each layer
// is a material identifier optionally followed by a thickness with one of
// the units nm, um, mm or m. The outer layers take no thickness; every
// interior layer needs one.
func ParseStack(text string) (materials []string, thicknesses []float64, err error) {
	ast, err := stackParser.ParseString("", text)
	if err != nil {
		return nil, nil, configError("stack", "%v", err)
	}

	last := len(ast.Layers) - 1
	for i, l := range ast.Layers {
		d := 0.0
		if l.Thickness != nil {
			scale, ok := unitScale[strings.ToLower(l.Thickness.Unit)]
			if !ok {
				return nil, nil, configError("stack", "%s: unknown unit %q for %s", l.Pos, l.Thickness.Unit, l.Material)
			}
			d = l.Thickness.Value * scale
		} else if i != 0 && i != last {
			return nil, nil, configError("stack", "%s: layer %d (%s) needs a thickness", l.Pos, i, l.Material)
		}
		materials = append(materials, l.Material)
		thicknesses = append(thicknesses, d)
	}
	return materials, thicknesses, nil
}
