// Package namespace provides the qualified "database.collection" name
// used to address a collection-level command.
package namespace

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Database names are limited to 63 bytes on disk.
const maxDatabaseNameLength = 64

// Characters that may not appear in a database name.
const invalidDatabaseChars = ` /\."$`

// Namespace is an immutable qualified collection name.
type Namespace struct {
	db   string
	coll string
}

// New constructs a Namespace without validating it; use IsValid to
// check the result.
func New(db, collection string) Namespace {
	return Namespace{db: db, coll: collection}
}

// Parse splits a full namespace of the form "database.collection" at the
// first dot. Collection names may themselves contain dots.
func Parse(fullName string) (Namespace, error) {
	db, coll, found := strings.Cut(fullName, ".")
	if !found {
		return Namespace{}, errors.Errorf("namespace '%s' is not of the form 'database.collection'", fullName)
	}

	ns := Namespace{db: db, coll: coll}
	if !ns.IsValid() {
		return Namespace{}, errors.Errorf("invalid namespace '%s'", fullName)
	}

	return ns, nil
}

func (n Namespace) DB() string { return n.db }

func (n Namespace) Collection() string { return n.coll }

func (n Namespace) String() string { return fmt.Sprintf("%s.%s", n.db, n.coll) }

// IsValid reports whether both halves satisfy the server's naming rules:
// the database name must be non-empty, fit the length limit, and avoid
// reserved characters; the collection name must be non-empty, must not
// contain '$', and must not begin with a dot.
func (n Namespace) IsValid() bool {
	if n.db == "" || len(n.db)+1 > maxDatabaseNameLength {
		return false
	}
	if strings.ContainsAny(n.db, invalidDatabaseChars) {
		return false
	}

	if n.coll == "" || strings.HasPrefix(n.coll, ".") {
		return false
	}
	if strings.Contains(n.coll, "$") {
		return false
	}

	return true
}
