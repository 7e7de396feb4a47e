// Package metadata loads Salesforce object metadata from a directory tree
// and produces the normalized entity/field model.
//
// The expected layout is one directory per object:
//
//	objects/
//	  Account/
//	    Account.object-meta.xml
//	    fields/
//	      Industry.field-meta.xml
//	      Owner__c.field-meta.xml
//	  Order__c/
//	    Order__c.object-meta.xml
//
// Loading follows a partial-success policy: a corrupt or incomplete tree
// still yields a best-effort result. Individual malformed descriptors are
// skipped and reported as warnings; only a missing root directory aborts
// the load.
package metadata
