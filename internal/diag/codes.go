package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the numeric identifier of a diagnostic. Values match the numbers
// the reference compiler uses for the same messages so tooling can key on them.
type Code uint16

const (
	UnknownCode Code = 0

	// синтаксис (tolerant JSON parser)
	UnterminatedStringLiteral           Code = 1002
	Expected                            Code = 1005
	UnterminatedComment                 Code = 1010
	UnexpectedToken                     Code = 1012
	ExpressionExpected                  Code = 1109
	HexadecimalDigitExpected            Code = 1125
	UnexpectedEndOfText                 Code = 1126
	InvalidCharacter                    Code = 1127
	PropertyAssignmentExpected          Code = 1136
	StringLiteralWithDoubleQuotesExpect Code = 1327

	// compiler options
	UnknownCompilerOption               Code = 5023
	CompilerOptionRequiresType          Code = 5024
	CannotReadFile                      Code = 5083
	RootValueMustBeObject               Code = 5092
	ArgumentForOptionMustBe             Code = 6046
	OptionShouldBeSetInsideCompilerOpts Code = 6258
)

type codeInfo struct {
	key      string
	category Category
	message  string
}

var codeTable = map[Code]codeInfo{
	UnknownCode:                         {"Unknown", CatError, "Unknown error"},
	UnterminatedStringLiteral:           {"Unterminated_string_literal", CatError, "Unterminated string literal."},
	Expected:                            {"_0_expected", CatError, "'{0}' expected."},
	UnterminatedComment:                 {"Asterisk_Slash_expected", CatError, "'*/' expected."},
	UnexpectedToken:                     {"Unexpected_token", CatError, "Unexpected token."},
	ExpressionExpected:                  {"Expression_expected", CatError, "Expression expected."},
	HexadecimalDigitExpected:            {"Hexadecimal_digit_expected", CatError, "Hexadecimal digit expected."},
	UnexpectedEndOfText:                 {"Unexpected_end_of_text", CatError, "Unexpected end of text."},
	InvalidCharacter:                    {"Invalid_character", CatError, "Invalid character."},
	PropertyAssignmentExpected:          {"Property_assignment_expected", CatError, "Property assignment expected."},
	StringLiteralWithDoubleQuotesExpect: {"String_literal_with_double_quotes_expected", CatError, "String literal with double quotes expected."},
	UnknownCompilerOption:               {"Unknown_compiler_option_0", CatError, "Unknown compiler option '{0}'."},
	CompilerOptionRequiresType:          {"Compiler_option_0_requires_a_value_of_type_1", CatError, "Compiler option '{0}' requires a value of type {1}."},
	CannotReadFile:                      {"Cannot_read_file_0", CatError, "Cannot read file '{0}'."},
	RootValueMustBeObject:               {"The_root_value_of_a_0_file_must_be_an_object", CatError, "The root value of a '{0}' file must be an object."},
	ArgumentForOptionMustBe:             {"Argument_for_0_option_must_be_Colon_1", CatError, "Argument for '{0}' option must be: {1}."},
	OptionShouldBeSetInsideCompilerOpts: {"_0_should_be_set_inside_the_compilerOptions_object_of_the_config_json_file", CatError, "'{0}' should be set inside the 'compilerOptions' object of the config json file."},
}

func (c Code) info() codeInfo {
	if info, ok := codeTable[c]; ok {
		return info
	}
	return codeTable[UnknownCode]
}

// ID returns the stable external form, e.g. "TS6046".
func (c Code) ID() string {
	return "TS" + strconv.Itoa(int(c))
}

// Key returns the symbolic message key, e.g. "Argument_for_0_option_must_be_Colon_1".
func (c Code) Key() string {
	return c.info().key
}

// Category returns the default category of the code.
func (c Code) Category() Category {
	return c.info().category
}

// Template returns the message template with {N} placeholders.
func (c Code) Template() string {
	return c.info().message
}

// Format substitutes args into the template. Missing args leave the
// placeholder in place.
func (c Code) Format(args ...string) string {
	msg := c.Template()
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Key())
}
