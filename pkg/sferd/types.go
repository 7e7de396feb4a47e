package sferd

import (
	"errors"
	"fmt"
)

// Category classifies an object by its naming convention.
type Category int

const (
	// CategoryStandard is a platform-defined object (no namespace markers).
	CategoryStandard Category = iota
	// CategoryManagedPackage is an object installed from a managed package
	// (carries a namespace separator but no custom suffix).
	CategoryManagedPackage
	// CategoryCustom is an org-defined object (__c) or custom metadata type (__mdt).
	CategoryCustom
)

// String returns a human-readable string representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "standard"
	case CategoryManagedPackage:
		return "managed-package"
	case CategoryCustom:
		return "custom"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// IsValid returns true if the Category is a valid, defined value.
func (c Category) IsValid() bool {
	return c >= CategoryStandard && c <= CategoryCustom
}

// Kind classifies a relationship by lifecycle semantics.
type Kind int

const (
	// KindWeak is a soft reference; source and target have independent lifecycles.
	KindWeak Kind = iota
	// KindStrong is an ownership link; deleting the parent deletes children.
	KindStrong
)

// String returns a human-readable string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindWeak:
		return "weak"
	case KindStrong:
		return "strong"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Field represents a single field parsed from a field descriptor file.
// Immutable once parsed.
type Field struct {
	// Name is the field's fullName from the descriptor.
	Name string

	// DataType is the source-system type tag (e.g. "Lookup", "Text", "Number").
	DataType string

	// Required indicates the descriptor marked the field as required.
	Required bool

	// IsReference is true when DataType denotes a relationship-capable type
	// (Lookup or MasterDetail).
	IsReference bool

	// ReferenceTarget is the name of the object this field points to.
	// Only meaningful when IsReference is true; may still be empty, in which
	// case the field is non-relational for graph purposes.
	ReferenceTarget string
}

// Entity represents one object loaded from the metadata tree.
// Created once per load pass; never mutated after construction.
type Entity struct {
	// Name is the unique object name, derived from its directory.
	Name string

	// Label is the display name from the descriptor, defaulting to Name.
	Label string

	// Fields in file discovery order. The order is not semantically
	// significant but is stable for reproducible output.
	Fields []Field

	// Category derived from the object's naming convention.
	Category Category
}

// ReferenceFields returns the fields eligible for relationship inference and
// diagram display: reference-capable fields with a non-empty target.
func (e *Entity) ReferenceFields() []Field {
	var refs []Field
	for _, f := range e.Fields {
		if f.IsReference && f.ReferenceTarget != "" {
			refs = append(refs, f)
		}
	}
	return refs
}

// Relationship is a directed link inferred from a reference field.
// Derived data, recomputed fully on every run.
type Relationship struct {
	// SourceEntity is the name of the object carrying the reference field.
	SourceEntity string

	// TargetEntity is the referenced object name. Not guaranteed to exist in
	// the loaded set; a relationship may point outside the loaded scope.
	TargetEntity string

	// SourceField is the name of the field that carries the reference.
	SourceField string

	// Kind is strong for MasterDetail references, weak for Lookup.
	Kind Kind
}

// WarningReason classifies a skippable problem encountered during loading.
type WarningReason string

const (
	// ReasonMalformedDescriptor indicates a descriptor file failed to parse.
	ReasonMalformedDescriptor WarningReason = "malformed-descriptor"
	// ReasonMissingRequiredElement indicates a field descriptor lacked
	// fullName or type.
	ReasonMissingRequiredElement WarningReason = "missing-required-element"
	// ReasonDuplicateEntity indicates two loaded objects share a name; the
	// last one loaded wins.
	ReasonDuplicateEntity WarningReason = "duplicate-entity"
)

// LoadWarning records a single skipped unit from a load pass. The load itself
// continues; warnings are a best-effort report of what was dropped.
type LoadWarning struct {
	// Path is the descriptor file (or directory) the warning refers to.
	Path string

	// Object is the object the unit belongs to.
	Object string

	// Reason classifies the problem.
	Reason WarningReason

	// Detail is a human-readable explanation.
	Detail string
}

// LoadResult is the output of a metadata load pass: the entity map keyed by
// object name, the deterministic load order, and any skip warnings.
type LoadResult struct {
	// Entities keyed by object name. Owned exclusively by this result.
	Entities map[string]*Entity

	// Order lists entity names in discovery order. Iterating Entities through
	// Order produces reproducible output.
	Order []string

	// Warnings for units skipped during the load.
	Warnings []LoadWarning
}

// DisplayPolicy controls how fields are rendered inside entity nodes.
type DisplayPolicy struct {
	// ShowFields toggles field lines inside entity boxes.
	ShowFields bool

	// MaxFieldsPerEntity caps the number of field lines per entity.
	// nil means unlimited.
	MaxFieldsPerEntity *int
}

// GenerateConfig contains all parameters for one diagram generation run.
type GenerateConfig struct {
	// ObjectsPath is the root directory containing one subdirectory per object.
	ObjectsPath string

	// OutputDir receives the DOT file and the images/ subdirectory.
	OutputDir string

	// Filename is the base name for generated files (no extension).
	Filename string

	// Title is rendered as the diagram heading.
	Title string

	// Objects optionally restricts the load to the named objects.
	// Empty means auto-select the top connected objects.
	Objects []string

	// MaxObjects caps the number of entities in the diagram when Objects is
	// not set explicitly.
	MaxObjects int

	// Formats lists the image formats to render ("svg", "png", "pdf").
	Formats []string

	// Engine selects the Graphviz layout engine.
	Engine string

	// ShowFields toggles field lines inside entity boxes.
	ShowFields bool

	// MaxFieldsPerEntity caps field lines per entity; nil enables
	// auto-limiting based on diagram size (unless AutoLimitFields is false).
	MaxFieldsPerEntity *int

	// AutoLimitFields derives a field cap from the selection size when
	// MaxFieldsPerEntity is unset.
	AutoLimitFields bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.ObjectsPath == "" {
		errs = append(errs, fmt.Errorf("ObjectsPath is required: %w", ErrInvalidConfig))
	}

	if c.MaxObjects <= 0 {
		errs = append(errs, fmt.Errorf("MaxObjects must be positive: %w", ErrInvalidConfig))
	}

	for _, format := range c.Formats {
		if !IsSupportedFormat(format) {
			errs = append(errs, fmt.Errorf("unsupported format %q: %w", format, ErrInvalidConfig))
		}
	}

	if c.Engine != "" && !IsSupportedEngine(c.Engine) {
		errs = append(errs, fmt.Errorf("unsupported layout engine %q: %w", c.Engine, ErrInvalidConfig))
	}

	if c.MaxFieldsPerEntity != nil && *c.MaxFieldsPerEntity < 0 {
		errs = append(errs, fmt.Errorf("MaxFieldsPerEntity cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary reports the outcome of a generation run.
type Summary struct {
	// ObjectsLoaded is the number of entities parsed from the metadata tree.
	ObjectsLoaded int

	// Relationships is the number of inferred relationships.
	Relationships int

	// Selected lists the entity names included in the diagram.
	Selected []string

	// Warnings carried over from the load pass.
	Warnings []LoadWarning

	// DOTPath is the path of the written DOT document.
	DOTPath string

	// Images lists the successfully rendered image paths.
	Images []string

	// FormatErrors maps a format to its render failure, if any. A format
	// failure does not invalidate the DOT output.
	FormatErrors map[string]error
}
