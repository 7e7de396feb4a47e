package sferd

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Diagram generated successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration or parameters
	ExitObjectsPathMissing = 11 // Metadata root directory not found
	ExitNoObjects          = 12 // Load produced zero objects (nothing to do)
	ExitRenderFailed       = 13 // Every requested image format failed to render
)

// Reference-capable data type tags. A field whose descriptor type matches one
// of these can carry a relationship to another object.
const (
	// TypeLookup is a soft reference with independent lifecycles.
	TypeLookup = "Lookup"

	// TypeMasterDetail is a hard parent/child ownership link; deleting the
	// parent deletes children.
	TypeMasterDetail = "MasterDetail"
)

// IsReferenceType returns true if the data type tag denotes a
// relationship-capable field.
func IsReferenceType(dataType string) bool {
	return dataType == TypeLookup || dataType == TypeMasterDetail
}

// Metadata tree layout conventions.
const (
	// MetadataNamespace is the XML namespace of all descriptor files.
	MetadataNamespace = "http://soap.sforce.com/2006/04/metadata"

	// ObjectDescriptorSuffix names the per-object descriptor:
	// <Name>/<Name>.object-meta.xml
	ObjectDescriptorSuffix = ".object-meta.xml"

	// FieldDescriptorSuffix names the per-field descriptors inside fields/.
	FieldDescriptorSuffix = ".field-meta.xml"

	// FieldsDirName is the optional subdirectory holding field descriptors.
	FieldsDirName = "fields"
)

// Object naming conventions used for category derivation.
const (
	// CustomObjectSuffix marks an org-defined custom object.
	CustomObjectSuffix = "__c"

	// CustomMetadataSuffix marks a custom metadata type.
	CustomMetadataSuffix = "__mdt"

	// NamespaceSeparator appears in managed-package object names.
	NamespaceSeparator = "__"
)

// Generation defaults, matching the tool's documented CLI defaults.
const (
	// DefaultMaxObjects is the default entity cap for auto-selection.
	DefaultMaxObjects = 15

	// DefaultOutputDir receives generated files.
	DefaultOutputDir = "output"

	// ImagesSubdir is created under the output directory for rendered images.
	ImagesSubdir = "images"

	// DefaultFilename is the base name for generated files.
	DefaultFilename = "final_erd"

	// DefaultTitle is rendered at the top of the diagram.
	DefaultTitle = "Salesforce System ERD"

	// DefaultEngine is the Graphviz layout engine used when none is chosen.
	DefaultEngine = "dot"
)

// DefaultFormats returns the image formats rendered when none are requested.
func DefaultFormats() []string {
	return []string{"svg"}
}

// IsSupportedFormat returns true for image formats the renderer can produce.
func IsSupportedFormat(format string) bool {
	switch format {
	case "svg", "png", "pdf":
		return true
	default:
		return false
	}
}

// IsSupportedEngine returns true for known Graphviz layout engines.
func IsSupportedEngine(engine string) bool {
	switch engine {
	case "dot", "neato", "fdp", "sfdp", "circo", "twopi":
		return true
	default:
		return false
	}
}
