package layout

// Built-in layout names.
const (
	NameQwerty    = "qwerty"
	NameDvorak    = "dvorak"
	NameKeypad    = "keypad"
	NameMacKeypad = "mac_keypad"
)

const qwertyGrid = "" +
	"`~ 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) -_ =+\n" +
	" qQ wW eE rR tT yY uU iI oO pP [{ ]} \\|\n" +
	"  aA sS dD fF gG hH jJ kK lL ;: '\"\n" +
	"   zZ xX cC vV bB nN mM ,< .> /?"

const dvorakGrid = "" +
	"`~ 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) [{ ]}\n" +
	" '\" ,< .> pP yY fF gG cC rR lL /? =+ \\|\n" +
	"  aA oO eE uU iI dD hH tT nN sS -_\n" +
	"   ;: qQ jJ kK xX bB mM wW vV zZ"

const keypadGrid = "" +
	"  / * -\n" +
	"7 8 9 +\n" +
	"4 5 6\n" +
	"1 2 3\n" +
	"  0 ."

const macKeypadGrid = "" +
	"  = / *\n" +
	"7 8 9 -\n" +
	"4 5 6 +\n" +
	"1 2 3\n" +
	"  0 ."

// Builtin parses and returns the four standard layouts, in the order
// the spatial matcher searches them.
func Builtin() []*Graph {
	specs := []struct {
		name string
		mode Mode
		grid string
	}{
		{NameQwerty, Slanted, qwertyGrid},
		{NameDvorak, Slanted, dvorakGrid},
		{NameKeypad, Aligned, keypadGrid},
		{NameMacKeypad, Aligned, macKeypadGrid},
	}
	graphs := make([]*Graph, 0, len(specs))
	for _, s := range specs {
		g, err := Parse(s.name, s.mode, s.grid)
		if err != nil {
			// Built-in grids are compile-time constants; a parse
			// failure here is a programming error.
			panic(err)
		}
		graphs = append(graphs, g)
	}
	return graphs
}
