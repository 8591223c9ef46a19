package options

// Kind is the value shape an option accepts.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	// KindPath is a string resolved against the config's base path.
	KindPath
	KindEnum
	// KindList converts every element with the Element declaration.
	KindList
	// KindFreeList copies an array verbatim.
	KindFreeList
	// KindObject copies a JSON object as is (paths).
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindPath:
		return "path"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindFreeList:
		return "free list"
	case KindObject:
		return "object"
	}
	return "Kind(?)"
}

// TypeName is the JSON type named by "requires a value of type" messages.
func (k Kind) TypeName() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindList, KindFreeList:
		return "Array"
	case KindObject:
		return "object"
	default:
		return "string"
	}
}

// Category groups options for listings.
type Category string

const (
	CatProjects      Category = "Projects"
	CatLanguage      Category = "Language and Environment"
	CatModules       Category = "Modules"
	CatJavaScript    Category = "JavaScript Support"
	CatEmit          Category = "Emit"
	CatInterop       Category = "Interop Constraints"
	CatTypeChecking  Category = "Type Checking"
	CatCompleteness  Category = "Completeness"
	CatOutput        Category = "Output Formatting"
	CatDiagnostics   Category = "Compiler Diagnostics"
	CatEditor        Category = "Editor Support"
	CatBackwardsComp Category = "Backwards Compatibility"
)

// OptionDeclaration describes one recognised compiler option.
type OptionDeclaration struct {
	Name     string
	Kind     Kind
	Enum     *EnumSet           // KindEnum
	Element  *OptionDeclaration // KindList
	Category Category
}

// TypeName is what listings print for the option: the kind, or the accepted
// literals of an enum.
func (d *OptionDeclaration) TypeName() string {
	switch d.Kind {
	case KindEnum:
		return d.Enum.Quoted()
	case KindList:
		if d.Element.Kind == KindEnum {
			return "list of enum"
		}
		return "list of " + d.Element.Kind.String()
	}
	return d.Kind.String()
}

func boolOpt(name string, cat Category) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindBoolean, Category: cat}
}

func numberOpt(name string, cat Category) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindNumber, Category: cat}
}

func stringOpt(name string, cat Category) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindString, Category: cat}
}

func pathOpt(name string, cat Category) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindPath, Category: cat}
}

func enumOpt(name string, cat Category, set *EnumSet) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindEnum, Enum: set, Category: cat}
}

func listOpt(name string, cat Category, elem *OptionDeclaration) *OptionDeclaration {
	return &OptionDeclaration{Name: name, Kind: KindList, Element: elem, Category: cat}
}
