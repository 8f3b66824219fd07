package progression

// GetProgressionDSLGrammar returns the Lark grammar for the progression DSL.
// Every call is a statement; statements are separated by ";".
// Values are quoted so that notation tokens ("C4_major7", "4/4", "I,IV,V") survive
// the lexer untouched and are handed to the theory parsers as-is.
func GetProgressionDSLGrammar() string {
	return `
// Progression DSL Grammar
// SYNTAX:
//   tempo(bpm=90)
//   meter(signature="6/8")
//   chord(symbol="C4_major7", duration="half")
//   progression(scale="C4_major", degrees="I,IV,V", duration="whole", repeat=2)
//
// Defaults: bpm 120, meter 4/4, duration quarter, repeat 1.

// ---------- Start rule ----------
start: statement (";" SP? statement)*

statement: tempo_call
         | meter_call
         | chord_call
         | progression_call

// ---------- Tempo ----------
tempo_call: "tempo" "(" tempo_param ")"
tempo_param: "bpm" "=" NUMBER

// ---------- Meter ----------
meter_call: "meter" "(" meter_param ")"
meter_param: "signature" "=" STRING

// ---------- Chord ----------
chord_call: "chord" "(" chord_params ")"

chord_params: chord_named_param ("," SP chord_named_param)*
chord_named_param: "symbol" "=" STRING
                 | "duration" "=" STRING
                 | "repeat" "=" NUMBER

// ---------- Progression: degrees harmonized in a scale ----------
progression_call: "progression" "(" progression_params ")"

progression_params: progression_named_param ("," SP progression_named_param)*
progression_named_param: "scale" "=" STRING
                       | "degrees" "=" STRING
                       | "duration" "=" STRING
                       | "sevenths" "=" BOOLEAN
                       | "repeat" "=" NUMBER

// ---------- Terminals ----------
BOOLEAN: "true" | "false"
SP: " "+
STRING: /"[^"]*"/
NUMBER: /\d+(\.\d+)?/
`
}
