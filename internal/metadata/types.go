package metadata

import "encoding/xml"

// Descriptor files carry a single fixed namespace; element matching below is
// namespace-qualified, so documents in a different namespace parse to empty
// values and are treated as unrecognized.
const xmlns = "http://soap.sforce.com/2006/04/metadata"

// objectDescriptor maps the <CustomObject> root of an object descriptor.
// Only the display label is read; everything else in the document is
// irrelevant to diagram generation.
//
// XML structure:
//
//	<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata">
//	  <label>Customer Order</label>
//	  ...
//	</CustomObject>
type objectDescriptor struct {
	XMLName xml.Name `xml:"CustomObject"`
	Label   string   `xml:"http://soap.sforce.com/2006/04/metadata label"`
}

// fieldDescriptor maps the <CustomField> root of a field descriptor.
//
// XML structure:
//
//	<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
//	  <fullName>Account__c</fullName>
//	  <type>Lookup</type>
//	  <required>true</required>
//	  <referenceTo>Account</referenceTo>
//	</CustomField>
//
// fullName and type are required; required and referenceTo are optional.
// The required flag is kept as a string so that anything other than the
// literal "true" counts as false, matching the descriptor convention.
type fieldDescriptor struct {
	XMLName     xml.Name `xml:"CustomField"`
	FullName    string   `xml:"http://soap.sforce.com/2006/04/metadata fullName"`
	Type        string   `xml:"http://soap.sforce.com/2006/04/metadata type"`
	Required    string   `xml:"http://soap.sforce.com/2006/04/metadata required"`
	ReferenceTo string   `xml:"http://soap.sforce.com/2006/04/metadata referenceTo"`
}
