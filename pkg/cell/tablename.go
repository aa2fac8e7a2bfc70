package cell

import (
	"errors"
	"strings"

	"github.com/zhangyunhao116/skipmap"
)

// CatalogTableName is the qualified name of the system catalog table.
const CatalogTableName = "catalog:meta"

const namespaceDelimiter = ':'

var errEmptyTableName = errors.New("table name cannot be empty")

// TableName is an interned qualified table name. Equal names share one
// instance for the lifetime of the process, so identity comparison is valid.
type TableName struct {
	namespace string
	qualifier string
	qualified string
}

// tableNames is the process-wide intern cache. Entries are never evicted.
var tableNames = skipmap.New[string, *TableName]()

// NewTableName parses and interns a qualified table name of the form
// "namespace:qualifier" or a bare "qualifier" in the default namespace.
func NewTableName(name string) (*TableName, error) {
	if name == "" {
		return nil, errEmptyTableName
	}
	if tn, ok := tableNames.Load(name); ok {
		return tn, nil
	}
	namespace, qualifier := "default", name
	if i := strings.IndexByte(name, namespaceDelimiter); i >= 0 {
		namespace, qualifier = name[:i], name[i+1:]
	}
	if qualifier == "" {
		return nil, errEmptyTableName
	}
	tn := &TableName{namespace: namespace, qualifier: qualifier, qualified: name}
	if prior, loaded := tableNames.LoadOrStore(name, tn); loaded {
		return prior, nil
	}
	return tn, nil
}

func (t *TableName) Namespace() string { return t.namespace }
func (t *TableName) Qualifier() string { return t.qualifier }
func (t *TableName) String() string    { return t.qualified }

// IsCatalog reports whether the name addresses the system catalog table,
// whose rows require the catalog comparator.
func (t *TableName) IsCatalog() bool {
	return t.qualified == CatalogTableName
}
