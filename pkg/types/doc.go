// Package types defines the domain entities, create inputs, update patches,
// configuration, and standard errors for the zelopet persistence layer.
//
// Every entity except Pet carries a PetID referencing its owning Pet row;
// the storage engine cascades deletes from Pet to all child tables. Optional
// columns are pointer fields, and boolean columns are translated to and from
// their INTEGER 0/1 storage form at the repository boundary.
package types
