package retroterm

import "fmt"

// codeKind enumerates the embedded-code action variants.
type codeKind int

const (
	codeReset codeKind = iota
	codeForeground
	codeReverse
)

// codeAction is one embedded-code action. The set is closed: every
// token maps to exactly one of the three kinds above.
type codeAction struct {
	kind  codeKind
	color Color
	on    bool
}

// codeTable maps embedded-code tokens to actions. Lowercase letters
// select the dark foregrounds, uppercase the bright ones.
var codeTable = map[string]codeAction{
	"_": {kind: codeReset},

	"k": {kind: codeForeground, color: Black},
	"r": {kind: codeForeground, color: Red},
	"g": {kind: codeForeground, color: Green},
	"y": {kind: codeForeground, color: Yellow},
	"b": {kind: codeForeground, color: Blue},
	"m": {kind: codeForeground, color: Magenta},
	"c": {kind: codeForeground, color: Cyan},
	"w": {kind: codeForeground, color: White},

	"K": {kind: codeForeground, color: BrightBlack},
	"R": {kind: codeForeground, color: BrightRed},
	"G": {kind: codeForeground, color: BrightGreen},
	"Y": {kind: codeForeground, color: BrightYellow},
	"B": {kind: codeForeground, color: BrightBlue},
	"M": {kind: codeForeground, color: BrightMagenta},
	"C": {kind: codeForeground, color: BrightCyan},
	"W": {kind: codeForeground, color: BrightWhite},

	"V": {kind: codeReverse, on: true},
	"v": {kind: codeReverse, on: false},
}

// applyCode applies one embedded-code token to a terminal. An
// unregistered token is a formatting bug in the calling program, not
// user input, and panics.
func applyCode(t Terminal, token string) {
	action, ok := codeTable[token]
	if !ok {
		panic(fmt.Sprintf("retroterm: unknown embedded code {%s}", token))
	}
	switch action.kind {
	case codeReset:
		t.Reset()
	case codeForeground:
		t.SetForeground(action.color)
	case codeReverse:
		t.SetReverse(action.on)
	}
}

// scan feeds an output string through a terminal one rune at a time,
// interpreting {x} embedded codes and newlines. "{{" emits a literal
// '{' without entering code mode.
func scan(t Terminal, s string) {
	inCode := false
	code := make([]rune, 0, 2)
	for _, r := range s {
		if inCode {
			switch r {
			case '{':
				t.WriteRune('{')
				code = code[:0]
				inCode = false
			case '}':
				applyCode(t, string(code))
				code = code[:0]
				inCode = false
			default:
				code = append(code, r)
			}
			continue
		}
		switch r {
		case '{':
			inCode = true
		case '\n':
			t.LineAdvance()
		default:
			t.WriteRune(r)
		}
	}
}
