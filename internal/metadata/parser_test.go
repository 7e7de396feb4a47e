package metadata

import (
	"errors"
	"testing"

	"github.com/sftools/sferd/pkg/sferd"
)

func TestParseObjectDescriptor_WithLabel(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata">
    <label>Customer Order</label>
    <pluralLabel>Customer Orders</pluralLabel>
</CustomObject>`

	label, err := parseObjectDescriptor([]byte(data), "Order__c.object-meta.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if label != "Customer Order" {
		t.Errorf("Expected label 'Customer Order', got %q", label)
	}
}

func TestParseObjectDescriptor_NoLabel(t *testing.T) {
	data := `<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata"/>`

	label, err := parseObjectDescriptor([]byte(data), "Account.object-meta.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if label != "" {
		t.Errorf("Expected empty label for fallback, got %q", label)
	}
}

func TestParseObjectDescriptor_MalformedXML(t *testing.T) {
	data := `<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata">
    <label>Broken`

	_, err := parseObjectDescriptor([]byte(data), "Broken.object-meta.xml")
	if err == nil {
		t.Fatal("Expected error for malformed XML")
	}

	var descErr *DescriptorError
	if !errors.As(err, &descErr) {
		t.Fatalf("Expected DescriptorError, got %T: %v", err, err)
	}
	if descErr.Path != "Broken.object-meta.xml" {
		t.Errorf("Expected path in error, got %q", descErr.Path)
	}
	if descErr.Line == 0 {
		t.Error("Expected line number in syntax error")
	}
}

func TestParseFieldDescriptor_Lookup(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Account__c</fullName>
    <type>Lookup</type>
    <required>true</required>
    <referenceTo>Account</referenceTo>
</CustomField>`

	field, err := parseFieldDescriptor([]byte(data), "Account__c.field-meta.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if field.Name != "Account__c" {
		t.Errorf("Expected name Account__c, got %q", field.Name)
	}
	if field.DataType != sferd.TypeLookup {
		t.Errorf("Expected type Lookup, got %q", field.DataType)
	}
	if !field.Required {
		t.Error("Expected required=true")
	}
	if !field.IsReference {
		t.Error("Expected IsReference=true for Lookup")
	}
	if field.ReferenceTarget != "Account" {
		t.Errorf("Expected target Account, got %q", field.ReferenceTarget)
	}
}

func TestParseFieldDescriptor_NonReference(t *testing.T) {
	data := `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Amount__c</fullName>
    <type>Currency</type>
</CustomField>`

	field, err := parseFieldDescriptor([]byte(data), "Amount__c.field-meta.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if field.Required {
		t.Error("Expected required=false when element is absent")
	}
	if field.IsReference {
		t.Error("Expected IsReference=false for Currency")
	}
	if field.ReferenceTarget != "" {
		t.Errorf("Expected no reference target, got %q", field.ReferenceTarget)
	}
}

func TestParseFieldDescriptor_LookupWithoutTarget(t *testing.T) {
	// A reference-typed field without referenceTo stays non-relational for
	// graph purposes but keeps its reference type.
	data := `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Legacy__c</fullName>
    <type>Lookup</type>
</CustomField>`

	field, err := parseFieldDescriptor([]byte(data), "Legacy__c.field-meta.xml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !field.IsReference {
		t.Error("Expected IsReference=true")
	}
	if field.ReferenceTarget != "" {
		t.Errorf("Expected empty target, got %q", field.ReferenceTarget)
	}
}

func TestParseFieldDescriptor_MissingRequiredElements(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing type", `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata"><fullName>X__c</fullName></CustomField>`},
		{"missing fullName", `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata"><type>Text</type></CustomField>`},
		{"empty document", `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFieldDescriptor([]byte(tt.data), "x.field-meta.xml")
			if !errors.Is(err, ErrMissingRequiredElement) {
				t.Errorf("Expected ErrMissingRequiredElement, got: %v", err)
			}
		})
	}
}

func TestParseFieldDescriptor_RequiredFalseVariants(t *testing.T) {
	for _, value := range []string{"false", "False", "TRUE", "yes", ""} {
		data := `<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>F__c</fullName>
    <type>Text</type>
    <required>` + value + `</required>
</CustomField>`

		field, err := parseFieldDescriptor([]byte(data), "f.field-meta.xml")
		if err != nil {
			t.Fatalf("required=%q: unexpected error: %v", value, err)
		}
		if field.Required {
			t.Errorf("required=%q should parse as false", value)
		}
	}
}

func TestCategoryForName(t *testing.T) {
	tests := []struct {
		name string
		want sferd.Category
	}{
		{"Account", sferd.CategoryStandard},
		{"Opportunity", sferd.CategoryStandard},
		{"Order__c", sferd.CategoryCustom},
		{"Settings__mdt", sferd.CategoryCustom},
		{"npsp__Donation", sferd.CategoryManagedPackage},
		{"npsp__Donation__c", sferd.CategoryCustom},
	}

	for _, tt := range tests {
		if got := categoryForName(tt.name); got != tt.want {
			t.Errorf("categoryForName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
