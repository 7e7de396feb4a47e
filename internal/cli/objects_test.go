package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sftools/sferd/pkg/sferd"
)

func resetObjectsFlags() {
	objectsFlags = objectsFlagValues{}
}

// writeObject creates <root>/<name>/<name>.object-meta.xml plus field
// descriptors, mirroring the sfdx source layout.
func writeObject(t *testing.T, root, name, label string, fields map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Join(dir, "fields"), 0755); err != nil {
		t.Fatal(err)
	}

	object := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata">
    <label>%s</label>
</CustomObject>`, label)
	if err := os.WriteFile(filepath.Join(dir, name+".object-meta.xml"), []byte(object), 0644); err != nil {
		t.Fatal(err)
	}

	for fieldName, target := range fields {
		field := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>%s</fullName>
    <type>Lookup</type>
    <referenceTo>%s</referenceTo>
</CustomField>`, fieldName, target)
		path := filepath.Join(dir, "fields", fieldName+".field-meta.xml")
		if err := os.WriteFile(path, []byte(field), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunObjects_ListsInventory(t *testing.T) {
	resetObjectsFlags()
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	root := t.TempDir()
	writeObject(t, root, "Order__c", "Order", map[string]string{"Account__c": "Account"})
	writeObject(t, root, "Account", "Account", nil)

	objectsFlags.objectsPath = root
	if err := runObjects(objectsCmd, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestRunObjects_JSON(t *testing.T) {
	resetObjectsFlags()
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	root := t.TempDir()
	writeObject(t, root, "Account", "Account", nil)

	objectsFlags.objectsPath = root
	objectsFlags.asJSON = true
	if err := runObjects(objectsCmd, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestRunObjects_MissingPath(t *testing.T) {
	resetObjectsFlags()
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	err := runObjects(objectsCmd, nil)
	if !errors.Is(err, sferd.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunObjects_EmptyTree(t *testing.T) {
	resetObjectsFlags()
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	objectsFlags.objectsPath = t.TempDir()
	err := runObjects(objectsCmd, nil)
	if !errors.Is(err, sferd.ErrNoObjects) {
		t.Errorf("Expected ErrNoObjects, got %v", err)
	}
}

func TestRunGenerate_EndToEndDOT(t *testing.T) {
	resetGenerateFlags()
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	root := t.TempDir()
	out := t.TempDir()
	writeObject(t, root, "Order__c", "Order", map[string]string{"Account__c": "Account"})
	writeObject(t, root, "Account", "Account", nil)

	generateFlags.objectsPath = root
	generateFlags.outputDir = out
	generateFlags.formats = []string{}

	if err := runGenerate(generateCmd, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "final_erd.dot"))
	if err != nil {
		t.Fatalf("DOT file not written: %v", err)
	}
	if !strings.Contains(string(data), `Order__c:"Account__c" -> Account`) {
		t.Errorf("DOT missing expected edge:\n%s", data)
	}
}
