package metadata

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/sftools/sferd/pkg/sferd"
)

// parseObjectDescriptor parses an object descriptor and returns the display
// label. An absent or empty <label> yields the empty string; the caller falls
// back to the object name.
func parseObjectDescriptor(data []byte, path string) (string, error) {
	var desc objectDescriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return "", wrapXMLError(err, path)
	}
	return strings.TrimSpace(desc.Label), nil
}

// parseFieldDescriptor parses a field descriptor into a normalized Field.
// A descriptor missing fullName or type returns ErrMissingRequiredElement.
func parseFieldDescriptor(data []byte, path string) (*sferd.Field, error) {
	var desc fieldDescriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return nil, wrapXMLError(err, path)
	}

	name := strings.TrimSpace(desc.FullName)
	dataType := strings.TrimSpace(desc.Type)
	if name == "" || dataType == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingRequiredElement)
	}

	field := &sferd.Field{
		Name:        name,
		DataType:    dataType,
		Required:    desc.Required == "true",
		IsReference: sferd.IsReferenceType(dataType),
	}
	if field.IsReference {
		field.ReferenceTarget = strings.TrimSpace(desc.ReferenceTo)
	}
	return field, nil
}

// categoryForName derives an object's category from its naming convention.
// The custom suffixes take precedence over the namespace separator: an object
// like ns__Invoice__c is custom, not managed-package.
func categoryForName(name string) sferd.Category {
	if strings.HasSuffix(name, sferd.CustomObjectSuffix) ||
		strings.HasSuffix(name, sferd.CustomMetadataSuffix) {
		return sferd.CategoryCustom
	}
	if strings.Contains(name, sferd.NamespaceSeparator) {
		return sferd.CategoryManagedPackage
	}
	return sferd.CategoryStandard
}
